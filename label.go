package exfat

import (
	"io"
	"reflect"

	"github.com/dsoprea/go-logging"
)

// ReadVolumeLabel returns the label of a parsed volume. An unused label entry
// is an empty label.
func ReadVolumeLabel(er *ExfatReader) (label string, err error) {
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

	vlde, _, err := root.VolumeLabel()
	log.PanicIf(err)

	if vlde.EntryType.IsInUse() == false {
		return "", nil
	}

	return vlde.Label(), nil
}

// WriteVolumeLabel replaces the label entry of a parsed volume in-place. The
// entry is not covered by any checksum so nothing else changes.
func WriteVolumeLabel(er *ExfatReader, w io.WriterAt, label string) (err error) {
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

	encoded, length, err := EncodeVolumeLabel(label)
	log.PanicIf(err)

	root, err := ReadRootDirectory(er)
	log.PanicIf(err)

	_, offset, err := root.VolumeLabel()
	log.PanicIf(err)

	raw, err := packDirectoryEntry(NewVolumeLabelDirectoryEntry(encoded, length))
	log.PanicIf(err)

	if _, err := w.WriteAt(raw, offset); err != nil {
		log.Panicf("could not write volume-label entry at (0x%x): [%s]", offset, err)
	}

	return nil
}
