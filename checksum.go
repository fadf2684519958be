package exfat

const (
	// Offsets within the boot sector that are excluded from the boot-region
	// checksum since they change while the volume is in use.
	volumeFlagsOffset  = 106
	percentInUseOffset = 112
)

// BootChecksumStart begins the boot-region checksum over the boot sector
// itself, skipping the VolumeFlags and PercentInUse fields.
func BootChecksumStart(sector []byte) (sum uint32) {
	for i, b := range sector {
		if i == volumeFlagsOffset || i == volumeFlagsOffset+1 || i == percentInUseOffset {
			continue
		}

		sum = rotateAdd(sum, b)
	}

	return sum
}

// BootChecksumAdd continues the boot-region checksum over a following sector.
func BootChecksumAdd(sector []byte, sum uint32) uint32 {
	for _, b := range sector {
		sum = rotateAdd(sum, b)
	}

	return sum
}

// UpcaseChecksum is the table-checksum stored in the up-case table directory
// entry.
func UpcaseChecksum(table []byte) (sum uint32) {
	for _, b := range table {
		sum = rotateAdd(sum, b)
	}

	return sum
}

func rotateAdd(sum uint32, b byte) uint32 {
	return (sum<<31 | sum>>1) + uint32(b)
}
