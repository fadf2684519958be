// This package builds and reads the low-level, on-disk storage structures.

package exfat

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"

	"encoding/binary"

	"github.com/dsoprea/go-logging"
	"github.com/go-restruct/restruct"
)

const (
	bootSectorHeaderSize        = 512
	mainExtendedBootSectorCount = 8
	fatEntrySize                = 4
)

var (
	requiredJumpBootSignature     = []byte{0xeb, 0x76, 0x90}
	requiredFileSystemName        = []byte("EXFAT   ")
	requiredBootSignature         = uint16(0xaa55)
	requiredExtendedBootSignature = uint32(0xaa550000)
)

var (
	readerLogger = log.NewLogger("exfat.reader")
)

var (
	ErrBootRegionChecksum = errors.New("boot-region checksum does not match")
	ErrNoBootRegion       = errors.New("no valid boot-region found")
)

// parsedBootRegion is one validated copy of the boot region.
type parsedBootRegion struct {
	bsh        BootSectorHeader
	sectorSize uint32
	checksum   uint32
}

// ExfatReader knows where to find all of the statically-located structures and
// how to parse them, and how to find clusters and chains of clusters.
type ExfatReader struct {
	rs io.ReadSeeker

	bootRegion       parsedBootRegion
	backupBootRegion *parsedBootRegion
	usingBackup      bool

	activeFat Fat
}

// NewExfatReader returns a new instance of ExfatReader.
func NewExfatReader(rs io.ReadSeeker) *ExfatReader {
	return &ExfatReader{
		rs: rs,
	}
}

func (er *ExfatReader) parseN(byteCount int, x interface{}) (err error) {
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

	raw := make([]byte, byteCount)

	_, err = io.ReadFull(er.rs, raw)
	log.PanicIf(err)

	err = restruct.Unpack(raw, defaultEncoding, x)
	log.PanicIf(err)

	return nil
}

// BootSectorHeader describes the main set of filesystem parameters. It is the
// first 512 bytes of the boot region.
type BootSectorHeader struct {
	// JumpBoot is always EBh 76h 90h.
	JumpBoot [3]byte

	// FileSystemName is "EXFAT" padded with three spaces.
	FileSystemName [8]byte

	// MustBeZero overlaps the FAT12/16/32 BPB so that those drivers do not
	// mount the volume.
	MustBeZero [53]byte

	// PartitionOffset is the media-relative sector that the volume starts at.
	// Zero means that it should be ignored.
	PartitionOffset uint64

	// VolumeLength is the size of the volume in sectors.
	VolumeLength uint64

	// FatOffset is the volume-relative sector of the first FAT.
	FatOffset uint32

	// FatLength is the size of each FAT in sectors.
	FatLength uint32

	// ClusterHeapOffset is the volume-relative sector that cluster (2) starts
	// at.
	ClusterHeapOffset uint32

	ClusterCount uint32

	FirstClusterOfRootDirectory uint32

	VolumeSerialNumber uint32

	// FileSystemRevision is the minor then the major version.
	FileSystemRevision [2]uint8

	VolumeFlags VolumeFlags

	BytesPerSectorShift    uint8
	SectorsPerClusterShift uint8

	// NumberOfFats is one, or two for TexFAT.
	NumberOfFats uint8

	DriveSelect uint8

	// PercentInUse is FFh when not known.
	PercentInUse uint8

	Reserved [7]byte
	BootCode [390]byte

	// BootSignature is AA55h for a valid boot-sector.
	BootSignature uint16
}

const (
	// VolumeFlagActiveFat selects the second FAT and allocation bitmap (only
	// valid with two FATs).
	VolumeFlagActiveFat VolumeFlags = 1

	// VolumeFlagVolumeDirty is set while the metadata may be inconsistent.
	VolumeFlagVolumeDirty = 2

	// VolumeFlagMediaFailure is set when the media has reported failures that
	// are not yet recorded in the FAT.
	VolumeFlagMediaFailure = 4

	VolumeFlagClearToZero = 8
)

// VolumeFlags represents some state flags for the filesystem.
type VolumeFlags uint16

// UseFirstFat indicates whether the first FAT should be used.
func (vf VolumeFlags) UseFirstFat() bool {
	return vf&VolumeFlagActiveFat == 0
}

// UseSecondFat indicates whether the second FAT should be used.
func (vf VolumeFlags) UseSecondFat() bool {
	return vf&VolumeFlagActiveFat > 0
}

// IsDirty indicates whether the volume was not cleanly unmounted.
func (vf VolumeFlags) IsDirty() bool {
	return vf&VolumeFlagVolumeDirty > 0
}

// HasHadMediaFailures indicates whether media-errors have been detected.
func (vf VolumeFlags) HasHadMediaFailures() bool {
	return vf&VolumeFlagMediaFailure > 0
}

func (vf VolumeFlags) ClearToZero() bool {
	return vf&VolumeFlagClearToZero > 0
}

// DumpBareIndented prints the volume flags with arbitrary indentation.
func (vf VolumeFlags) DumpBareIndented(indent string) {
	fmt.Printf("%sRaw Value: (%08b)\n", indent, vf)
	fmt.Printf("%sUseFirstFat: [%v]\n", indent, vf.UseFirstFat())
	fmt.Printf("%sUseSecondFat: [%v]\n", indent, vf.UseSecondFat())
	fmt.Printf("%sIsDirty: [%v]\n", indent, vf.IsDirty())
	fmt.Printf("%sHasHadMediaFailures: [%v]\n", indent, vf.HasHadMediaFailures())
	fmt.Printf("%sClearToZero: [%v]\n", indent, vf.ClearToZero())
}

// SectorSize returns the effective sector-size.
func (bsh BootSectorHeader) SectorSize() uint32 {
	return uint32(1) << bsh.BytesPerSectorShift
}

// SectorsPerCluster returns the effective sectors-per-cluster count.
func (bsh BootSectorHeader) SectorsPerCluster() uint32 {
	return uint32(1) << bsh.SectorsPerClusterShift
}

// ClusterSize returns the cluster-size in bytes.
func (bsh BootSectorHeader) ClusterSize() uint32 {
	return bsh.SectorSize() << bsh.SectorsPerClusterShift
}

// Dump prints all of the BSH parameters along with the common calculated ones.
func (bsh BootSectorHeader) Dump() {
	fmt.Printf("Boot Sector Header\n")
	fmt.Printf("==================\n")
	fmt.Printf("\n")

	fmt.Printf("PartitionOffset: (%d)\n", bsh.PartitionOffset)
	fmt.Printf("VolumeLength: (%d)\n", bsh.VolumeLength)
	fmt.Printf("FatOffset: (%d)\n", bsh.FatOffset)
	fmt.Printf("FatLength: (%d)\n", bsh.FatLength)
	fmt.Printf("ClusterHeapOffset: (%d)\n", bsh.ClusterHeapOffset)
	fmt.Printf("ClusterCount: (%d)\n", bsh.ClusterCount)
	fmt.Printf("FirstClusterOfRootDirectory: (%d)\n", bsh.FirstClusterOfRootDirectory)
	fmt.Printf("VolumeSerialNumber: (0x%08x)\n", bsh.VolumeSerialNumber)
	fmt.Printf("FileSystemRevision: (%d.%02d)\n", bsh.FileSystemRevision[1], bsh.FileSystemRevision[0])
	fmt.Printf("BytesPerSectorShift: (%d)\n", bsh.BytesPerSectorShift)
	fmt.Printf("-> Sector-size: 2^(%d) -> %d\n", bsh.BytesPerSectorShift, bsh.SectorSize())
	fmt.Printf("SectorsPerClusterShift: (%d)\n", bsh.SectorsPerClusterShift)
	fmt.Printf("-> Sectors-per-cluster: 2^(%d) -> %d\n", bsh.SectorsPerClusterShift, bsh.SectorsPerCluster())
	fmt.Printf("-> Cluster-size: %d\n", bsh.ClusterSize())
	fmt.Printf("NumberOfFats: (%d)\n", bsh.NumberOfFats)
	fmt.Printf("DriveSelect: (0x%02x)\n", bsh.DriveSelect)
	fmt.Printf("PercentInUse: (%d)\n", bsh.PercentInUse)
	fmt.Printf("\n")

	fmt.Printf("VolumeFlags: (%d)\n", bsh.VolumeFlags)
	bsh.VolumeFlags.DumpBareIndented("  ")

	fmt.Printf("\n")
}

// Strings return a description of BSH.
func (bsh BootSectorHeader) String() string {
	return fmt.Sprintf("BootSector<SN=(0x%08x) REVISION=(0x%02x)-(0x%02x)>", bsh.VolumeSerialNumber, bsh.FileSystemRevision[1], bsh.FileSystemRevision[0])
}

func (er *ExfatReader) readBootSectorHead(offset int64) (bsh BootSectorHeader, err error) {
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

	_, err = er.rs.Seek(offset, io.SeekStart)
	log.PanicIf(err)

	err = er.parseN(bootSectorHeaderSize, &bsh)
	log.PanicIf(err)

	if bytes.Equal(bsh.JumpBoot[:], requiredJumpBootSignature) != true {
		log.Panicf("jump-boot value not correct: %x", bsh.JumpBoot[:])
	} else if bytes.Equal(bsh.FileSystemName[:], requiredFileSystemName) != true {
		log.Panicf("filesystem name not correct: %x [%s]", bsh.FileSystemName, string(bsh.FileSystemName[:]))
	} else if bsh.BootSignature != requiredBootSignature {
		log.Panicf("boot-signature not correct: %x", bsh.BootSignature)
	}

	for _, c := range bsh.MustBeZero {
		if c != 0 {
			log.Panicf("must-be-zero field not all zeros")
		}
	}

	if bsh.BytesPerSectorShift < minSectorBits || bsh.BytesPerSectorShift > maxSectorBits {
		log.Panicf("sector-size shift out of range: (%d)", bsh.BytesPerSectorShift)
	} else if int(bsh.BytesPerSectorShift)+int(bsh.SectorsPerClusterShift) > maxClusterBits {
		log.Panicf("cluster-size shift out of range: (%d)", bsh.SectorsPerClusterShift)
	} else if bsh.NumberOfFats != 1 && bsh.NumberOfFats != 2 {
		log.Panicf("number of FATs not valid: (%d)", bsh.NumberOfFats)
	}

	return bsh, nil
}

// readBootRegion reads and validates the boot region at the given offset,
// including the extended-boot signatures and the checksum sector.
func (er *ExfatReader) readBootRegion(offset int64) (pbr parsedBootRegion, err error) {
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

	bsh, err := er.readBootSectorHead(offset)
	log.PanicIf(err)

	sectorSize := bsh.SectorSize()

	_, err = er.rs.Seek(offset, io.SeekStart)
	log.PanicIf(err)

	raw := make([]byte, bootRegionSectorCount*sectorSize)

	_, err = io.ReadFull(er.rs, raw)
	log.PanicIf(err)

	sector := func(i int) []byte {
		return raw[uint32(i)*sectorSize : uint32(i+1)*sectorSize]
	}

	checksum := BootChecksumStart(sector(0))

	for i := 1; i < bootRegionSectorCount-1; i++ {
		current := sector(i)

		if i <= mainExtendedBootSectorCount {
			signature := defaultEncoding.Uint32(current[sectorSize-4:])
			if signature != requiredExtendedBootSignature {
				log.Panicf("extended boot-sector (%d) signature not correct: (0x%08x)", i, signature)
			}
		}

		checksum = BootChecksumAdd(current, checksum)
	}

	checksumSector := sector(bootRegionSectorCount - 1)
	for i := uint32(0); i < sectorSize; i += 4 {
		if recorded := defaultEncoding.Uint32(checksumSector[i:]); recorded != checksum {
			readerLogger.Warningf(nil, "Boot-region at (0x%x) has checksum (0x%08x) but (0x%08x) is recorded.", offset, checksum, recorded)
			log.Panic(ErrBootRegionChecksum)
		}
	}

	pbr = parsedBootRegion{
		bsh:        bsh,
		sectorSize: sectorSize,
		checksum:   checksum,
	}

	return pbr, nil
}

// findBackupBootRegion probes every valid sector-size for the backup copy.
// This is used when the main copy can not be trusted for the sector-size.
func (er *ExfatReader) findBackupBootRegion() (pbr parsedBootRegion, err error) {
	for sectorBits := minSectorBits; sectorBits <= maxSectorBits; sectorBits++ {
		offset := int64(bootRegionSectorCount) << uint(sectorBits)

		pbr, err = er.readBootRegion(offset)
		if err == nil && pbr.bsh.BytesPerSectorShift == uint8(sectorBits) {
			return pbr, nil
		}
	}

	return pbr, ErrNoBootRegion
}

// Fat is the collection of all FAT entries, indexed by cluster-number.
type Fat []MappedCluster

func (er *ExfatReader) parseFat(offset int64) (fat Fat, err error) {
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

	bsh := er.bootRegion.bsh

	// Entries (0) and (1) are reserved, so entry (ClusterCount+1) is the last.
	entryCount := uint64(bsh.ClusterCount) + firstDataCluster

	if entryCount*fatEntrySize > uint64(bsh.FatLength)*uint64(bsh.SectorSize()) {
		log.Panicf("FAT too small for cluster-count: (%d) sectors < (%d) entries", bsh.FatLength, entryCount)
	}

	_, err = er.rs.Seek(offset, io.SeekStart)
	log.PanicIf(err)

	fat = make(Fat, entryCount)

	err = binary.Read(er.rs, defaultEncoding, fat)
	log.PanicIf(err)

	if mediaType := uint32(fat[0]) & 0xff; mediaType != 0xf8 {
		log.Panicf("media-type not correct: (0x%08x) -> (0x%02x)", uint32(fat[0]), mediaType)
	} else if fat[1] != ClusterEndOfChain {
		log.Panicf("second fat-entry has unexpected value: (0x%08x)", uint32(fat[1]))
	}

	return fat, nil
}

func (er *ExfatReader) parseFats() (fats []Fat, err error) {
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

	bsh := er.bootRegion.bsh
	sectorSize := int64(bsh.SectorSize())

	fats = make([]Fat, bsh.NumberOfFats)
	for i := 0; i < int(bsh.NumberOfFats); i++ {
		offset := (int64(bsh.FatOffset) + int64(i)*int64(bsh.FatLength)) * sectorSize

		fat, err := er.parseFat(offset)
		log.PanicIf(err)

		fats[i] = fat
	}

	return fats, nil
}

// SectorSize is the sector-size from the active boot-region.
func (er *ExfatReader) SectorSize() uint32 {
	return er.bootRegion.sectorSize
}

// SectorsPerCluster is the sectors-per-cluster from the active boot-region.
func (er *ExfatReader) SectorsPerCluster() uint32 {
	return er.bootRegion.bsh.SectorsPerCluster()
}

// ActiveBootRegion returns the active boot-sector struct (whether main or
// backup).
func (er *ExfatReader) ActiveBootRegion() BootSectorHeader {
	return er.bootRegion.bsh
}

// BootRegionChecksum returns the checksum of the active boot-region.
func (er *ExfatReader) BootRegionChecksum() uint32 {
	return er.bootRegion.checksum
}

// UsingBackupBootRegion indicates that the main boot-region was not valid.
func (er *ExfatReader) UsingBackupBootRegion() bool {
	return er.usingBackup
}

// BackupBootRegionMatches indicates that the backup boot-region is valid and
// has the same checksum as the main one.
func (er *ExfatReader) BackupBootRegionMatches() bool {
	if er.usingBackup == true || er.backupBootRegion == nil {
		return false
	}

	return er.backupBootRegion.checksum == er.bootRegion.checksum
}

// FirstClusterOfRootDirectory is the first-cluster of the directory-entry data.
func (er *ExfatReader) FirstClusterOfRootDirectory() uint32 {
	return er.bootRegion.bsh.FirstClusterOfRootDirectory
}

// Fat returns the active FAT.
func (er *ExfatReader) Fat() Fat {
	return er.activeFat
}

// ClusterOffset returns the byte-offset of the given cluster.
func (er *ExfatReader) ClusterOffset(clusterNumber uint32) uint64 {
	bsh := er.bootRegion.bsh

	return uint64(bsh.ClusterHeapOffset)*uint64(bsh.SectorSize()) + uint64(clusterNumber-firstDataCluster)*uint64(bsh.ClusterSize())
}

// IsValidCluster indicates whether the cluster-number is in the heap.
func (er *ExfatReader) IsValidCluster(clusterNumber uint32) bool {
	return clusterNumber >= firstDataCluster && uint64(clusterNumber) < uint64(er.bootRegion.bsh.ClusterCount)+firstDataCluster
}

// GetCluster gets a Cluster instance for the given cluster.
func (er *ExfatReader) GetCluster(clusterNumber uint32) *ExfatCluster {
	ec, err := newExfatCluster(er, clusterNumber)
	log.PanicIf(err)

	return ec
}

// ClusterVisitorFunc is a visitor callback as all clusters in the chain are
// visited.
type ClusterVisitorFunc func(ec *ExfatCluster) (doContinue bool, err error)

// EnumerateClusters calls the given callback for each cluster in the chain
// starting from the given cluster.
func (er *ExfatReader) EnumerateClusters(startingClusterNumber uint32, cb ClusterVisitorFunc, useFat bool) (err error) {
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

	if startingClusterNumber < firstDataCluster {
		log.Panicf("cluster can not be less than (2): (%d)", startingClusterNumber)
	}

	visited := uint32(0)

	currentClusterNumber := startingClusterNumber
	for {
		if er.IsValidCluster(currentClusterNumber) == false {
			log.Panicf("cluster-number out of range: (%d)", currentClusterNumber)
		}

		// A chain can not be longer than the heap.
		visited++
		if visited > er.bootRegion.bsh.ClusterCount {
			log.Panicf("cluster chain starting at (%d) loops", startingClusterNumber)
		}

		ec := er.GetCluster(currentClusterNumber)

		doContinue, err := cb(ec)
		log.PanicIf(err)

		if doContinue == false {
			break
		}

		if useFat == true {
			nextMappedCluster := er.activeFat[currentClusterNumber]
			if nextMappedCluster.IsLast() == true {
				break
			} else if nextMappedCluster.IsBad() == true {
				log.Panicf("cluster chain starting at (%d) reaches a bad cluster after (%d)", startingClusterNumber, currentClusterNumber)
			}

			currentClusterNumber = uint32(nextMappedCluster)
		} else {
			// NoFatChain: the allocation is one contiguous series of clusters.
			currentClusterNumber++
		}
	}

	return nil
}

func (er *ExfatReader) checkClusterHeapOffset() (err error) {
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

	bsh := er.bootRegion.bsh

	fatsEnd := uint64(bsh.FatOffset) + uint64(bsh.FatLength)*uint64(bsh.NumberOfFats)
	if uint64(bsh.ClusterHeapOffset) < fatsEnd {
		log.Panicf("cluster heap overlaps the FATs: (%d) < (%d)", bsh.ClusterHeapOffset, fatsEnd)
	}

	heapEnd := uint64(bsh.ClusterHeapOffset) + uint64(bsh.ClusterCount)*uint64(bsh.SectorsPerCluster())
	if heapEnd > bsh.VolumeLength {
		log.Panicf("cluster heap runs past the volume: (%d) > (%d)", heapEnd, bsh.VolumeLength)
	}

	return nil
}

// Parse loads all of the main filesystem structures. This is always a small
// read (does not scale with size). The backup boot-region is used if the main
// one is not valid.
func (er *ExfatReader) Parse() (err error) {
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

	bootRegionMain, mainErr := er.readBootRegion(0)
	if mainErr == nil {
		er.bootRegion = bootRegionMain

		backupOffset := int64(bootRegionSectorCount) * int64(bootRegionMain.sectorSize)

		bootRegionBackup, err := er.readBootRegion(backupOffset)
		if err != nil {
			readerLogger.Warningf(nil, "Backup boot-region not valid: [%s]", err)
		} else {
			er.backupBootRegion = &bootRegionBackup
		}
	} else {
		readerLogger.Warningf(nil, "Main boot-region not valid. Trying backup: [%s]", mainErr)

		bootRegionBackup, err := er.findBackupBootRegion()
		if err != nil {
			log.Panic(mainErr)
		}

		er.bootRegion = bootRegionBackup
		er.usingBackup = true
	}

	fats, err := er.parseFats()
	log.PanicIf(err)

	// Only the VolumeFlags of the main boot-sector are current but, if we are
	// on the backup, we have nothing better.
	if er.bootRegion.bsh.VolumeFlags.UseFirstFat() == true {
		er.activeFat = fats[0]
	} else if er.bootRegion.bsh.VolumeFlags.UseSecondFat() == true {
		if len(fats) == 1 {
			log.Panicf("boot-sector-header says to use the second FAT but only one FAT is available")
		}

		er.activeFat = fats[1]
	}

	err = er.checkClusterHeapOffset()
	log.PanicIf(err)

	return nil
}

// WriteFromClusterChain enumerates all sectors from all clusters starting
// from the given one.
func (er *ExfatReader) WriteFromClusterChain(firstClusterNumber uint32, dataSize uint64, useFat bool, w io.Writer) (visitedClusters, visitedSectors []uint32, err error) {
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

	visitedClusters = make([]uint32, 0)
	visitedSectors = make([]uint32, 0)

	if dataSize == 0 {
		return visitedClusters, visitedSectors, nil
	}

	sectorSize := uint64(er.SectorSize())
	tailFragmentSize := dataSize % sectorSize

	written := uint64(0)
	sectorCount := uint64(0)
	doContinue := true

	clusterCb := func(ec *ExfatCluster) (doContinueCluster bool, err error) {
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

		visitedClusters = append(visitedClusters, ec.ClusterNumber())

		sectorCb := func(sectorNumber uint32, data []byte) (doContinueSector bool, err error) {
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

			visitedSectors = append(visitedSectors, sectorNumber)

			// If we're in the last sector.
			if (sectorCount+1)*sectorSize >= dataSize {
				if tailFragmentSize > 0 {
					data = data[:tailFragmentSize]
				}

				doContinue = false
			}

			_, err = w.Write(data)
			log.PanicIf(err)

			written += uint64(len(data))
			sectorCount++

			return doContinue, nil
		}

		err = ec.EnumerateSectors(sectorCb)
		log.PanicIf(err)

		return doContinue, nil
	}

	err = er.EnumerateClusters(firstClusterNumber, clusterCb, useFat)
	log.PanicIf(err)

	if written != dataSize {
		log.Panicf("written bytes do not equal data-size: (%d) != (%d)", written, dataSize)
	}

	return visitedClusters, visitedSectors, nil
}

// ExfatCluster manages reads on the sectors in a cluster and checks that the
// requested sectors are within bounds.
type ExfatCluster struct {
	er *ExfatReader

	clusterNumber     uint32
	sectorsPerCluster uint32
	clusterOffset     uint64
}

func newExfatCluster(er *ExfatReader, clusterNumber uint32) (ec *ExfatCluster, err error) {
	if clusterNumber < firstDataCluster {
		log.Panicf("cluster-number can not be less than two: (%d)", clusterNumber)
	}

	ec = &ExfatCluster{
		er: er,

		clusterNumber:     clusterNumber,
		sectorsPerCluster: er.SectorsPerCluster(),
		clusterOffset:     er.ClusterOffset(clusterNumber),
	}

	return ec, nil
}

// ClusterNumber gets the number of the cluster that this instance represents.
func (ec *ExfatCluster) ClusterNumber() uint32 {
	return ec.clusterNumber
}

// GetSectorByIndex gets the data for the given sector within the cluster that
// this instance represents.
func (ec *ExfatCluster) GetSectorByIndex(sectorIndex uint32) (data []byte, err error) {
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

	if sectorIndex >= ec.sectorsPerCluster {
		log.Panicf("sector-index exceeds the number of sectors per cluster: (%d) >= (%d)", sectorIndex, ec.sectorsPerCluster)
	}

	sectorSize := ec.er.SectorSize()

	offset := ec.clusterOffset + uint64(sectorSize)*uint64(sectorIndex)

	_, err = ec.er.rs.Seek(int64(offset), io.SeekStart)
	log.PanicIf(err)

	data = make([]byte, sectorSize)

	_, err = io.ReadFull(ec.er.rs, data)
	log.PanicIf(err)

	return data, nil
}

// SectorVisitorFunc is a visitor callback that is called for each sector in a
// cluster.
type SectorVisitorFunc func(sectorNumber uint32, data []byte) (bool, error)

// EnumerateSectors calls the given callback for each sector in the cluster that
// this instance represents.
func (ec *ExfatCluster) EnumerateSectors(cb SectorVisitorFunc) (err error) {
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

	firstSectorNumber := uint32(ec.clusterOffset / uint64(ec.er.SectorSize()))

	for i := uint32(0); i < ec.sectorsPerCluster; i++ {
		sectorData, err := ec.GetSectorByIndex(i)
		log.PanicIf(err)

		doContinue, err := cb(firstSectorNumber+i, sectorData)
		log.PanicIf(err)

		if doContinue == false {
			break
		}
	}

	return nil
}
