package exfat

import (
	"bytes"
	"errors"
	"reflect"

	"encoding/binary"

	"github.com/dsoprea/go-logging"
)

var (
	ErrClusterOverflow = errors.New("cluster number overflowed")
)

// MappedCluster represents one cluster entry in the FAT.
type MappedCluster uint32

const (
	// ClusterMediaDescriptor is always the first FAT entry.
	ClusterMediaDescriptor MappedCluster = 0xfffffff8

	ClusterBad        MappedCluster = 0xfffffff7
	ClusterEndOfChain MappedCluster = 0xffffffff
)

// IsBad indicates that this cluster has been marked as having one or more bad
// sectors.
func (mc MappedCluster) IsBad() bool {
	return mc == ClusterBad
}

// IsLast indicates that no more clusters follow the cluster that led to this
// entry.
func (mc MappedCluster) IsLast() bool {
	return mc == ClusterEndOfChain
}

// IsFree indicates that the cluster is not allocated in the FAT.
func (mc MappedCluster) IsFree() bool {
	return mc == 0
}

// fatRegion writes the initial FAT: the two reserved entries followed by one
// chain for each of the cluster-bitmap, the up-case table, and the root
// directory, in that order.
type fatRegion struct {
	vp VolumeParameters
}

func (fr *fatRegion) Alignment() uint64 {
	return fatAlignmentSectors * fr.vp.SectorSize()
}

func (fr *fatRegion) Size(rr *RegionRegistry) uint64 {
	return fr.vp.VolumeSize / fr.vp.ClusterSize() * 4
}

// fatBuilder accumulates FAT entries in cluster order.
type fatBuilder struct {
	clusterSize uint64
	cluster     uint32
	entries     []MappedCluster
}

func (fb *fatBuilder) add(value MappedCluster) {
	fb.entries = append(fb.entries, value)

	fb.cluster++
	if fb.cluster == 0 {
		log.Panic(ErrClusterOverflow)
	}
}

// addChain links enough clusters to hold `length` bytes. Every entry points to
// the next cluster and the last one is terminated.
func (fb *fatBuilder) addChain(length uint64) {
	count := divRoundUp(length, fb.clusterSize)

	for i := uint64(1); i < count; i++ {
		next := fb.cluster + 1
		if next == 0 {
			log.Panic(ErrClusterOverflow)
		}

		fb.add(MappedCluster(next))
	}

	fb.add(ClusterEndOfChain)
}

// BuildFat returns the FAT entries that are written for the given layout.
func BuildFat(rr *RegionRegistry) (entries []MappedCluster, err error) {
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

	fb := &fatBuilder{
		clusterSize: rr.Parameters().ClusterSize(),
	}

	fb.add(ClusterMediaDescriptor)
	fb.add(ClusterEndOfChain)

	fb.addChain(rr.SizeOf(RegionClusterBitmap))
	fb.addChain(rr.SizeOf(RegionUpcaseTable))
	fb.addChain(rr.SizeOf(RegionRootDirectory))

	return fb.entries, nil
}

func (fr *fatRegion) Write(d Device, position uint64, rr *RegionRegistry) (err error) {
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

	entries, err := BuildFat(rr)
	log.PanicIf(err)

	b := new(bytes.Buffer)

	err = binary.Write(b, defaultEncoding, entries)
	log.PanicIf(err)

	if _, err := d.WriteAt(b.Bytes(), int64(position)); err != nil {
		log.Panicf("could not write (%d) FAT entries at (0x%x): [%s]", len(entries), position, err)
	}

	return nil
}
