package exfat

import (
	"fmt"

	"github.com/dsoprea/go-logging"
)

// RegionId identifies one of the metadata regions of a new volume.
type RegionId int

const (
	RegionPrimaryVbr RegionId = iota
	RegionBackupVbr
	RegionFat
	RegionClusterBitmap
	RegionUpcaseTable
	RegionRootDirectory

	regionCount = int(RegionRootDirectory) + 1
)

var (
	// RegionIds is the placement order of the regions on disk. Every pass
	// over the volume (layout, erase, write) walks this order.
	RegionIds = []RegionId{
		RegionPrimaryVbr,
		RegionBackupVbr,
		RegionFat,
		RegionClusterBitmap,
		RegionUpcaseTable,
		RegionRootDirectory,
	}

	regionNames = map[RegionId]string{
		RegionPrimaryVbr:    "PrimaryVbr",
		RegionBackupVbr:     "BackupVbr",
		RegionFat:           "Fat",
		RegionClusterBitmap: "ClusterBitmap",
		RegionUpcaseTable:   "UpcaseTable",
		RegionRootDirectory: "RootDirectory",
	}
)

func (ri RegionId) String() string {
	if name, found := regionNames[ri]; found == true {
		return name
	}

	return fmt.Sprintf("RegionId<(%d)>", int(ri))
}

// Region is one contiguous metadata structure. Sizes and positions may depend
// on other regions, so the registry is passed in for lookups.
type Region interface {
	// Alignment is the byte boundary that the region must start on.
	Alignment() uint64

	// Size is the number of bytes the region occupies.
	Size(rr *RegionRegistry) uint64

	// Write emits the region at `position`. Bytes that are not explicitly
	// written have already been zeroed by the erase pass.
	Write(d Device, position uint64, rr *RegionRegistry) error
}

// newRegion constructs the region implementation for the given id. The set is
// closed; anything else is a programming error.
func newRegion(id RegionId, vp VolumeParameters) Region {
	switch id {
	case RegionPrimaryVbr, RegionBackupVbr:
		return &bootRegion{vp: vp}
	case RegionFat:
		return &fatRegion{vp: vp}
	case RegionClusterBitmap:
		return &clusterBitmapRegion{vp: vp}
	case RegionUpcaseTable:
		return &upcaseTableRegion{vp: vp}
	case RegionRootDirectory:
		return &rootDirectoryRegion{vp: vp}
	}

	log.Panicf("unknown region: (%d)", int(id))
	return nil
}
