package exfat

import (
	"reflect"

	"github.com/dsoprea/go-logging"
)

// upcaseTableRegion writes the compressed up-case table. A run of identity
// mappings is stored as 0xffff followed by the run-length.
type upcaseTableRegion struct {
	vp VolumeParameters
}

func (utr *upcaseTableRegion) Alignment() uint64 {
	return utr.vp.ClusterSize()
}

func (utr *upcaseTableRegion) Size(rr *RegionRegistry) uint64 {
	return uint64(len(upcaseTable))
}

// UpcaseTable returns a copy of the table that new volumes are formatted with.
func UpcaseTable() []byte {
	table := make([]byte, len(upcaseTable))
	copy(table, upcaseTable[:])

	return table
}

// UpcaseTableChecksum returns the checksum recorded in the up-case table
// directory-entry.
func UpcaseTableChecksum() uint32 {
	return UpcaseChecksum(upcaseTable[:])
}

func (utr *upcaseTableRegion) Write(d Device, position uint64, rr *RegionRegistry) (err error) {
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

	if _, err := d.WriteAt(upcaseTable[:], int64(position)); err != nil {
		log.Panicf("could not write up-case table of (%d) bytes at (0x%x): [%s]", len(upcaseTable), position, err)
	}

	return nil
}
