package exfat

import (
	"reflect"

	"github.com/dsoprea/go-logging"
)

// rootDirectoryRegion is the initial root directory: one cluster holding the
// volume-label, allocation-bitmap, and up-case table entries. The rest of the
// cluster stays zero, which terminates the directory.
type rootDirectoryRegion struct {
	vp VolumeParameters
}

func (rdr *rootDirectoryRegion) Alignment() uint64 {
	return rdr.vp.ClusterSize()
}

func (rdr *rootDirectoryRegion) Size(rr *RegionRegistry) uint64 {
	return rdr.vp.ClusterSize()
}

// clusterOf returns the cluster-number of a region in the cluster heap.
func clusterOf(rr *RegionRegistry, id RegionId) uint32 {
	heapPosition := rr.PositionOf(RegionClusterBitmap)
	position := rr.PositionOf(id)

	return uint32((position-heapPosition)/rr.Parameters().ClusterSize()) + firstDataCluster
}

// BuildRootDirectoryEntries returns the entries of the new root directory in
// the order that they are written.
func BuildRootDirectoryEntries(rr *RegionRegistry) []DirectoryEntry {
	vp := rr.Parameters()

	return []DirectoryEntry{
		NewVolumeLabelDirectoryEntry(vp.Label, vp.LabelLength),
		NewAllocationBitmapDirectoryEntry(clusterOf(rr, RegionClusterBitmap), rr.SizeOf(RegionClusterBitmap)),
		NewUpcaseTableDirectoryEntry(UpcaseTableChecksum(), clusterOf(rr, RegionUpcaseTable), rr.SizeOf(RegionUpcaseTable)),
	}
}

func (rdr *rootDirectoryRegion) Write(d Device, position uint64, rr *RegionRegistry) (err error) {
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

	offset := int64(position)
	for _, de := range BuildRootDirectoryEntries(rr) {
		raw, err := packDirectoryEntry(de)
		log.PanicIf(err)

		if _, err := d.WriteAt(raw, offset); err != nil {
			log.Panicf("could not write %s entry at (0x%x): [%s]", de.TypeName(), offset, err)
		}

		offset += directoryEntryBytesCount
	}

	return nil
}
