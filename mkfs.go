package exfat

import (
	"fmt"
	"io"
	"io/ioutil"
	"reflect"

	"github.com/dsoprea/go-logging"
	"github.com/dustin/go-humanize"
)

const (
	// eraseBlockSize is the size of the zero-writes used to clear the
	// metadata regions.
	eraseBlockSize = 1024 * 1024
)

var (
	mkfsLogger = log.NewLogger("exfat.mkfs")
)

// Formatter writes a new, empty exFAT volume to a device. Every region is
// first zeroed and then written, in layout order.
type Formatter struct {
	d        Device
	rr       *RegionRegistry
	progress io.Writer
}

// NewFormatter returns a formatter for the given device and parameters.
func NewFormatter(d Device, vp VolumeParameters) *Formatter {
	return &Formatter{
		d:        d,
		rr:       NewRegionRegistry(vp),
		progress: ioutil.Discard,
	}
}

// SetProgressWriter sets where the "Creating" and "Flushing" status is
// printed. Nothing is printed by default.
func (f *Formatter) SetProgressWriter(w io.Writer) {
	f.progress = w
}

// Registry returns the region registry that the volume is laid-out with.
func (f *Formatter) Registry() *RegionRegistry {
	return f.rr
}

// Format checks that the volume fits, erases every region, writes every
// region, and flushes the device. No I/O happens if the volume does not fit.
func (f *Formatter) Format() (err error) {
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

	vp := f.rr.Parameters()

	f.rr.Dump()

	err = f.rr.CheckCapacity(vp.VolumeSize)
	log.PanicIf(err)

	mkfsLogger.Infof(nil, "Formatting (%s) volume with (%s) clusters.", humanize.IBytes(vp.VolumeSize), humanize.IBytes(vp.ClusterSize()))

	fmt.Fprintf(f.progress, "Creating... ")

	err = f.erase()
	log.PanicIf(err)

	err = f.create()
	log.PanicIf(err)

	fmt.Fprintf(f.progress, "done.\n")

	fmt.Fprintf(f.progress, "Flushing... ")

	if err := f.d.Sync(); err != nil {
		log.Panicf("could not flush device: [%s]", err)
	}

	fmt.Fprintf(f.progress, "done.\n")

	return nil
}

// erase zeroes every region with sequential writes of at most one block.
func (f *Formatter) erase() (err error) {
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

	block := make([]byte, eraseBlockSize)

	for _, id := range RegionIds {
		position := f.rr.PositionOf(id)
		size := f.rr.SizeOf(id)

		if _, err := f.d.Seek(int64(position), io.SeekStart); err != nil {
			log.Panicf("could not seek to (0x%x) to erase %s: [%s]", position, id, err)
		}

		blockCount := divRoundUp(size, eraseBlockSize)
		for i := uint64(0); i < blockCount; i++ {
			length := size - i*eraseBlockSize
			if length > eraseBlockSize {
				length = eraseBlockSize
			}

			if _, err := f.d.Write(block[:length]); err != nil {
				log.Panicf("could not erase block (%d)/(%d) of %s at (0x%x): [%s]", i+1, blockCount, id, position, err)
			}
		}

		mkfsLogger.Debugf(nil, "Erased %s: (%d) bytes at (0x%x).", id, size, position)
	}

	return nil
}

// create writes every region at its position.
func (f *Formatter) create() (err error) {
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

	for _, id := range RegionIds {
		position := f.rr.PositionOf(id)

		if _, err := f.d.Seek(int64(position), io.SeekStart); err != nil {
			log.Panicf("could not seek to (0x%x) to write %s: [%s]", position, id, err)
		}

		err := f.rr.Region(id).Write(f.d, position, f.rr)
		log.PanicIf(err)

		mkfsLogger.Debugf(nil, "Wrote %s at (0x%x).", id, position)
	}

	return nil
}
