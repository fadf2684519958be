package exfat

import (
	"reflect"

	"github.com/dsoprea/go-logging"
	"github.com/go-restruct/restruct"
)

const (
	// A boot region is the boot sector, the extended boot sectors, the OEM
	// parameters sector, a reserved sector, and the checksum sector.
	bootRegionSectorCount = 1 + mainExtendedBootSectorCount + 2 + 1

	// The FAT always starts on a 128-sector boundary.
	fatAlignmentSectors = 128

	driveSelectDefault = 0x80
)

// bootRegion writes one copy of the boot region. The main and backup copies
// are produced by identical instances and are therefore byte-identical.
type bootRegion struct {
	vp VolumeParameters
}

func (br *bootRegion) Alignment() uint64 {
	return br.vp.SectorSize()
}

func (br *bootRegion) Size(rr *RegionRegistry) uint64 {
	return bootRegionSectorCount * br.vp.SectorSize()
}

// BuildSuperBlock populates the boot-sector header from the resolved layout.
func BuildSuperBlock(rr *RegionRegistry) (bsh BootSectorHeader, err error) {
	defer func() {
		if errRaw := recover(); errRaw != nil {
			var ok bool
			if err, ok = errRaw.(error); ok == true {
				err = log.Wrap(err)
			} else {
				err = log.Errorf("Error not an error: [%s] [%v]", reflect.TypeOf(errRaw).Name(), errRaw)
			}
		}
	}()

	vp := rr.Parameters()
	sectorSize := vp.SectorSize()
	clusterSize := vp.ClusterSize()

	clustersMax := vp.VolumeSize / clusterSize
	fatSectors := divRoundUp(clustersMax*4, sectorSize)

	fatOffset := rr.Region(RegionFat).Alignment() / sectorSize
	fatLength := roundUp(fatOffset+fatSectors, vp.SectorsPerCluster()) - fatOffset

	clusterHeapPosition := rr.PositionOf(RegionClusterBitmap)
	clusterCount := clustersMax - (fatOffset+fatLength)>>vp.SpcBits

	if clustersMax > lastDataCluster || clusterHeapPosition/sectorSize > 0xffffffff {
		log.Panicf("volume geometry not addressable: clusters=(%d) heap-offset=(%d)", clustersMax, clusterHeapPosition)
	}

	bsh = BootSectorHeader{
		PartitionOffset:             vp.FirstSector,
		VolumeLength:                vp.VolumeSize / sectorSize,
		FatOffset:                   uint32(fatOffset),
		FatLength:                   uint32(fatLength),
		ClusterHeapOffset:           uint32(clusterHeapPosition / sectorSize),
		ClusterCount:                uint32(clusterCount),
		FirstClusterOfRootDirectory: clusterOf(rr, RegionRootDirectory),
		VolumeSerialNumber:          vp.Serial,
		FileSystemRevision:          [2]uint8{0, 1},
		BytesPerSectorShift:         vp.SectorBits,
		SectorsPerClusterShift:      vp.SpcBits,
		NumberOfFats:                1,
		DriveSelect:                 driveSelectDefault,
		BootSignature:               requiredBootSignature,
	}

	copy(bsh.JumpBoot[:], requiredJumpBootSignature)
	copy(bsh.FileSystemName[:], requiredFileSystemName)

	return bsh, nil
}

// BuildBootRegion returns the complete boot region as it is written to disk,
// along with its checksum.
func BuildBootRegion(rr *RegionRegistry) (sectors [][]byte, checksum uint32, err error) {
	defer func() {
		if errRaw := recover(); errRaw != nil {
			var ok bool
			if err, ok = errRaw.(error); ok == true {
				err = log.Wrap(err)
			} else {
				err = log.Errorf("Error not an error: [%s] [%v]", reflect.TypeOf(errRaw).Name(), errRaw)
			}
		}
	}()

	sectorSize := rr.Parameters().SectorSize()

	bsh, err := BuildSuperBlock(rr)
	log.PanicIf(err)

	raw, err := restruct.Pack(defaultEncoding, &bsh)
	log.PanicIf(err)

	sectors = make([][]byte, 0, bootRegionSectorCount)

	bootSector := make([]byte, sectorSize)
	copy(bootSector, raw)

	sectors = append(sectors, bootSector)
	checksum = BootChecksumStart(bootSector)

	// Extended boot sectors carry no boot-code; only the signature.
	for i := 0; i < mainExtendedBootSectorCount; i++ {
		extendedBootSector := make([]byte, sectorSize)
		defaultEncoding.PutUint32(extendedBootSector[sectorSize-4:], requiredExtendedBootSignature)

		sectors = append(sectors, extendedBootSector)
		checksum = BootChecksumAdd(extendedBootSector, checksum)
	}

	// OEM parameters and the reserved sector.
	for i := 0; i < 2; i++ {
		emptySector := make([]byte, sectorSize)

		sectors = append(sectors, emptySector)
		checksum = BootChecksumAdd(emptySector, checksum)
	}

	checksumSector := make([]byte, sectorSize)
	for i := uint64(0); i < sectorSize; i += 4 {
		defaultEncoding.PutUint32(checksumSector[i:], checksum)
	}

	sectors = append(sectors, checksumSector)

	return sectors, checksum, nil
}

func (br *bootRegion) Write(d Device, position uint64, rr *RegionRegistry) (err error) {
	defer func() {
		if errRaw := recover(); errRaw != nil {
			var ok bool
			if err, ok = errRaw.(error); ok == true {
				err = log.Wrap(err)
			} else {
				err = log.Errorf("Error not an error: [%s] [%v]", reflect.TypeOf(errRaw).Name(), errRaw)
			}
		}
	}()

	sectors, _, err := BuildBootRegion(rr)
	log.PanicIf(err)

	offset := int64(position)
	for i, sector := range sectors {
		if _, err := d.WriteAt(sector, offset); err != nil {
			log.Panicf("could not write %s sector (%d) at (0x%x): [%s]", bootSectorRole(i), i, offset, err)
		}

		offset += int64(len(sector))
	}

	return nil
}

func bootSectorRole(i int) string {
	switch {
	case i == 0:
		return "super-block"
	case i <= mainExtendedBootSectorCount:
		return "boot-signature"
	case i < bootRegionSectorCount-1:
		return "reserved"
	}

	return "checksum"
}
