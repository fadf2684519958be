package exfat

import (
	"io"
	"testing"

	"github.com/dsoprea/go-logging"
	"github.com/spf13/afero"
)

func TestOpenDevice(t *testing.T) {
	fs := createTestImage(1024 * 1024)

	d, err := OpenDevice(fs, testImagePath, true)
	log.PanicIf(err)

	defer d.Close()

	if d.Size() != 1024*1024 {
		t.Fatalf("Size not correct: (%d)", d.Size())
	}

	// The size is established without moving the position.
	position, err := d.Seek(0, io.SeekCurrent)
	log.PanicIf(err)

	if position != 0 {
		t.Fatalf("Position not at start: (%d)", position)
	}

	_, err = d.WriteAt([]byte{0x11, 0x22}, 100)
	log.PanicIf(err)

	err = d.Sync()
	log.PanicIf(err)

	raw := make([]byte, 2)

	_, err = d.ReadAt(raw, 100)
	log.PanicIf(err)

	if raw[0] != 0x11 || raw[1] != 0x22 {
		t.Fatalf("Data not correct: %x", raw)
	}
}

func TestOpenDevice_ReadOnly(t *testing.T) {
	fs := createTestImage(1024 * 1024)

	d, err := OpenDevice(fs, testImagePath, false)
	log.PanicIf(err)

	defer d.Close()

	_, err = d.Write([]byte{0x11})
	if err == nil {
		t.Fatalf("Expected write to read-only device to fail.")
	}
}

func TestOpenDevice_Missing(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := OpenDevice(fs, "/missing.img", false)
	if err == nil {
		t.Fatalf("Expected error for missing device.")
	}
}
