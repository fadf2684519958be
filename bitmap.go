package exfat

import (
	"reflect"

	"github.com/bits-and-blooms/bitset"
	"github.com/dsoprea/go-logging"
)

// clusterBitmapRegion is the allocation bitmap. It starts the cluster heap, so
// it is cluster-aligned and its first bit is cluster 2.
type clusterBitmapRegion struct {
	vp VolumeParameters
}

func (cbr *clusterBitmapRegion) Alignment() uint64 {
	return cbr.vp.ClusterSize()
}

// Size is one bit for every cluster between the start of the bitmap and the
// end of the volume.
func (cbr *clusterBitmapRegion) Size(rr *RegionRegistry) uint64 {
	position := rr.PositionOf(RegionClusterBitmap)
	if cbr.vp.VolumeSize <= position {
		return 0
	}

	clusters := (cbr.vp.VolumeSize - position) / cbr.vp.ClusterSize()
	return divRoundUp(clusters, 8)
}

// AllocatedClusters returns the number of clusters used by the metadata that
// lives in the cluster heap.
func AllocatedClusters(rr *RegionRegistry) uint64 {
	clusterSize := rr.Parameters().ClusterSize()

	return divRoundUp(rr.SizeOf(RegionClusterBitmap), clusterSize) +
		divRoundUp(rr.SizeOf(RegionUpcaseTable), clusterSize) +
		divRoundUp(rr.SizeOf(RegionRootDirectory), clusterSize)
}

// BuildClusterBitmap returns the leading bitmap bytes that mark the allocated
// clusters. Bits are stored least-significant first.
func BuildClusterBitmap(rr *RegionRegistry) []byte {
	allocated := AllocatedClusters(rr)
	bitCount := roundUp(allocated, 8)

	bs := bitset.New(uint(bitCount))
	for i := uint64(0); i < allocated; i++ {
		bs.Set(uint(i))
	}

	return bitsetToBytes(bs, bitCount/8)
}

func bitsetToBytes(bs *bitset.BitSet, length uint64) []byte {
	words := bs.Bytes()

	raw := make([]byte, len(words)*8)
	for i, word := range words {
		defaultEncoding.PutUint64(raw[i*8:], word)
	}

	return raw[:length]
}

func (cbr *clusterBitmapRegion) Write(d Device, position uint64, rr *RegionRegistry) (err error) {
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

	raw := BuildClusterBitmap(rr)

	if _, err := d.WriteAt(raw, int64(position)); err != nil {
		log.Panicf("could not write bitmap of (%d) bytes at (0x%x): [%s]", len(raw), position, err)
	}

	return nil
}
