package exfat

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"

	"github.com/bits-and-blooms/bitset"
	"github.com/dsoprea/go-logging"
)

var (
	ErrNoAllocationBitmap = errors.New("root directory has no allocation-bitmap entry")
	ErrNoUpcaseTable      = errors.New("root directory has no up-case table entry")
)

// ClusterRange is a run of consecutive clusters.
type ClusterRange struct {
	First uint32
	Count uint32
}

func (cr ClusterRange) String() string {
	return fmt.Sprintf("ClusterRange<FIRST=(%d) COUNT=(%d)>", cr.First, cr.Count)
}

// AllocationBitmap is the loaded allocation bitmap of a volume. Bit (0) is
// cluster (2).
type AllocationBitmap struct {
	bs           *bitset.BitSet
	clusterCount uint32
}

// NewAllocationBitmap interprets raw bitmap data for the given number of
// clusters. Bits past the cluster-count are ignored.
func NewAllocationBitmap(raw []byte, clusterCount uint32) *AllocationBitmap {
	bs := bitset.New(uint(clusterCount))

	for i, b := range raw {
		for j := uint(0); j < 8; j++ {
			index := uint(i)*8 + j
			if index >= uint(clusterCount) {
				break
			}

			if b&(1<<j) != 0 {
				bs.Set(index)
			}
		}
	}

	return &AllocationBitmap{
		bs:           bs,
		clusterCount: clusterCount,
	}
}

// LoadAllocationBitmap finds the bitmap via the root directory and reads it.
func LoadAllocationBitmap(er *ExfatReader) (ab *AllocationBitmap, err error) {
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

	root, err := ReadRootDirectory(er)
	log.PanicIf(err)

	abde := root.AllocationBitmap()
	if abde == nil {
		log.Panic(ErrNoAllocationBitmap)
	}

	clusterCount := er.ActiveBootRegion().ClusterCount

	if abde.DataLength < divRoundUp(uint64(clusterCount), 8) {
		log.Panicf("allocation bitmap too short for (%d) clusters: (%d) bytes", clusterCount, abde.DataLength)
	}

	b := new(bytes.Buffer)

	_, _, err = er.WriteFromClusterChain(abde.FirstCluster, abde.DataLength, true, b)
	log.PanicIf(err)

	ab = NewAllocationBitmap(b.Bytes(), clusterCount)
	return ab, nil
}

// ClusterCount returns the number of clusters that the bitmap covers.
func (ab *AllocationBitmap) ClusterCount() uint32 {
	return ab.clusterCount
}

// IsAllocated indicates whether the given cluster is marked as in use.
func (ab *AllocationBitmap) IsAllocated(clusterNumber uint32) bool {
	if clusterNumber < firstDataCluster {
		return false
	}

	return ab.bs.Test(uint(clusterNumber - firstDataCluster))
}

// CountAllocated returns the number of allocated clusters.
func (ab *AllocationBitmap) CountAllocated() uint32 {
	return uint32(ab.bs.Count())
}

// UsedRanges returns the runs of allocated clusters in ascending order.
func (ab *AllocationBitmap) UsedRanges() []ClusterRange {
	ranges := make([]ClusterRange, 0)

	i, found := ab.bs.NextSet(0)
	for found == true && i < uint(ab.clusterCount) {
		end, hasClear := ab.bs.NextClear(i)
		if hasClear == false || end > uint(ab.clusterCount) {
			end = uint(ab.clusterCount)
		}

		ranges = append(ranges, ClusterRange{
			First: uint32(i) + firstDataCluster,
			Count: uint32(end - i),
		})

		i, found = ab.bs.NextSet(end)
	}

	return ranges
}

// LoadUpcaseTable finds the up-case table via the root directory and returns
// its data along with the checksum that the directory-entry records.
func LoadUpcaseTable(er *ExfatReader) (table []byte, recordedChecksum uint32, err error) {
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

	root, err := ReadRootDirectory(er)
	log.PanicIf(err)

	utde := root.UpcaseTable()
	if utde == nil {
		log.Panic(ErrNoUpcaseTable)
	}

	b := new(bytes.Buffer)

	_, _, err = er.WriteFromClusterChain(utde.FirstCluster, utde.DataLength, true, b)
	log.PanicIf(err)

	return b.Bytes(), utde.TableChecksum, nil
}
