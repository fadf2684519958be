package exfat

import (
	"testing"

	"github.com/dsoprea/go-logging"
)

func TestReadVolumeLabel(t *testing.T) {
	d, er := getTestVolumeAndParser()

	defer d.Close()

	label, err := ReadVolumeLabel(er)
	log.PanicIf(err)

	if label != "TESTVOLUME" {
		t.Fatalf("Label not correct: [%s]", label)
	}
}

func TestReadVolumeLabel_Empty(t *testing.T) {
	d, _ := getTestVolume(testVolumeSize, "")

	defer d.Close()

	er := NewExfatReader(d)

	err := er.Parse()
	log.PanicIf(err)

	label, err := ReadVolumeLabel(er)
	log.PanicIf(err)

	if label != "" {
		t.Fatalf("Label should be empty: [%s]", label)
	}
}

func TestWriteVolumeLabel(t *testing.T) {
	d, er := getTestVolumeAndParser()

	defer d.Close()

	err := WriteVolumeLabel(er, d, "Ñew label")
	log.PanicIf(err)

	label, err := ReadVolumeLabel(er)
	log.PanicIf(err)

	if label != "Ñew label" {
		t.Fatalf("Label not updated: [%s]", label)
	}

	// Clearing the label keeps the entry but marks it unused.
	err = WriteVolumeLabel(er, d, "")
	log.PanicIf(err)

	label, err = ReadVolumeLabel(er)
	log.PanicIf(err)

	if label != "" {
		t.Fatalf("Label not cleared: [%s]", label)
	}

	raw := make([]byte, 1)

	_, err = d.ReadAt(raw, int64(er.ClusterOffset(er.FirstClusterOfRootDirectory())))
	log.PanicIf(err)

	if raw[0] != 0x03 {
		t.Fatalf("Cleared label entry-type not correct: (0x%02x)", raw[0])
	}

	// The volume is still valid and the label can be set again.
	er = NewExfatReader(d)

	err = er.Parse()
	log.PanicIf(err)

	err = WriteVolumeLabel(er, d, "again")
	log.PanicIf(err)

	label, err = ReadVolumeLabel(er)
	log.PanicIf(err)

	if label != "again" {
		t.Fatalf("Label not set again: [%s]", label)
	}
}

func TestWriteVolumeLabel_TooLong(t *testing.T) {
	d, er := getTestVolumeAndParser()

	defer d.Close()

	err := WriteVolumeLabel(er, d, "this label is too long")
	if err == nil {
		t.Fatalf("Expected error for long label.")
	} else if log.Is(err, ErrLabelTooLong) != true {
		t.Fatalf("Error not correct: [%s]", err)
	}

	label, err := ReadVolumeLabel(er)
	log.PanicIf(err)

	if label != "TESTVOLUME" {
		t.Fatalf("Label should not have changed: [%s]", label)
	}
}

func TestReadVolumeLabel_MissingEntry(t *testing.T) {
	d, er := getTestVolumeAndParser()

	defer d.Close()

	// Replace the label entry with a deleted file entry.
	_, err := d.WriteAt([]byte{0x05}, int64(er.ClusterOffset(er.FirstClusterOfRootDirectory())))
	log.PanicIf(err)

	_, err = ReadVolumeLabel(er)
	if err == nil {
		t.Fatalf("Expected missing label entry.")
	} else if log.Is(err, ErrNoVolumeLabelEntry) != true {
		t.Fatalf("Error not correct: [%s]", err)
	}
}
