package exfat

import (
	"bytes"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/dsoprea/go-logging"
)

func TestFormatter_Format(t *testing.T) {
	fs := createTestImage(testVolumeSize)

	d, err := OpenDevice(fs, testImagePath, true)
	log.PanicIf(err)

	defer d.Close()

	f := NewFormatter(d, getTestParameters(testVolumeSize, "formatted"))

	progress := new(bytes.Buffer)
	f.SetProgressWriter(progress)

	err = f.Format()
	log.PanicIf(err)

	if progress.String() != "Creating... done.\nFlushing... done.\n" {
		t.Fatalf("Progress not correct: [%s]", progress.String())
	}

	raw := make([]byte, testVolumeSize)

	_, err = d.ReadAt(raw, 0)
	log.PanicIf(err)

	primary := raw[:6144]
	backup := raw[6144:12288]

	if bytes.Equal(primary, backup) != true {
		t.Fatalf("Backup boot-region does not match.")
	}

	// FAT: media descriptor, reserved, then three single-cluster chains.
	fat := raw[65536 : 65536+24]
	expectedFat := []byte{
		0xf8, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff,
		0x00, 0x00, 0x00, 0x00,
	}

	if bytes.Equal(fat, expectedFat) != true {
		t.Fatalf("FAT not correct: %x", fat)
	} else if raw[131072] != 0x07 || raw[131073] != 0 {
		t.Fatalf("Bitmap not correct: %x", raw[131072:131074])
	} else if bytes.Equal(raw[135168:135168+3750], UpcaseTable()) != true {
		t.Fatalf("Up-case table not written.")
	}

	root := raw[139264 : 139264+4096]
	if root[0] != 0x83 || root[32] != 0x81 || root[64] != 0x82 || root[96] != 0x00 {
		t.Fatalf("Root directory not correct: %x %x %x %x", root[0], root[32], root[64], root[96])
	}

	if bytes.Equal(raw[143360:], make([]byte, testVolumeSize-143360)) != true {
		t.Fatalf("Data past the metadata was touched.")
	}
}

func TestFormatter_Format_ErasesRegions(t *testing.T) {
	fs := createTestImage(testVolumeSize)

	d, err := OpenDevice(fs, testImagePath, true)
	log.PanicIf(err)

	defer d.Close()

	// Garbage in the FAT and the root directory must not survive.
	_, err = d.WriteAt(bytes.Repeat([]byte{0xaa}, 4096), 65536+1024)
	log.PanicIf(err)

	_, err = d.WriteAt(bytes.Repeat([]byte{0xaa}, 4096), 139264)
	log.PanicIf(err)

	err = NewFormatter(d, getTestParameters(testVolumeSize, "")).Format()
	log.PanicIf(err)

	raw := make([]byte, 4096)

	_, err = d.ReadAt(raw, 65536+1024)
	log.PanicIf(err)

	if bytes.Equal(raw, make([]byte, 4096)) != true {
		t.Fatalf("FAT not erased.")
	}

	_, err = d.ReadAt(raw, 139264)
	log.PanicIf(err)

	if bytes.Equal(raw[96:], make([]byte, 4096-96)) != true {
		t.Fatalf("Root directory not erased.")
	}
}

func TestFormatter_Format_TooSmall(t *testing.T) {
	d := newTestSpyDevice(64 * 1024)

	f := NewFormatter(d, getTestParameters(64*1024, ""))

	err := f.Format()
	if err == nil {
		t.Fatalf("Expected capacity failure.")
	} else if log.Is(err, ErrVolumeTooSmall) != true {
		t.Fatalf("Error not correct: [%s]", err)
	} else if d.writes != 0 || d.syncs != 0 {
		t.Fatalf("I/O was done: (%d) writes (%d) syncs", d.writes, d.syncs)
	}
}

func TestFormatter_Format_SmallVolume(t *testing.T) {
	d, _ := getTestVolume(1024*1024, "")

	defer d.Close()

	er := NewExfatReader(d)

	err := er.Parse()
	log.PanicIf(err)

	if er.ActiveBootRegion().ClusterCount != 239 {
		t.Fatalf("Cluster count not correct: (%d)", er.ActiveBootRegion().ClusterCount)
	}
}

func TestFormatter_Format_EraseFailure(t *testing.T) {
	d := newTestSpyDevice(testVolumeSize)
	d.failAt = 0

	err := NewFormatter(d, getTestParameters(testVolumeSize, "")).Format()
	if err == nil {
		t.Fatalf("Expected erase failure.")
	} else if strings.Contains(err.Error(), "could not erase block (1)/(1) of PrimaryVbr") != true {
		t.Fatalf("Error not correct: [%s]", err)
	} else if d.syncs != 0 {
		t.Fatalf("Device should not have been flushed.")
	}
}

func TestFormatter_Format_WriteFailure(t *testing.T) {
	d := newTestSpyDevice(testVolumeSize)

	// The erase pass does one write per region for this volume.
	d.failAt = len(RegionIds)

	err := NewFormatter(d, getTestParameters(testVolumeSize, "")).Format()
	if err == nil {
		t.Fatalf("Expected write failure.")
	} else if strings.Contains(err.Error(), "could not write super-block sector") != true {
		t.Fatalf("Error not correct: [%s]", err)
	}
}

func TestFormatter_Format_PanicNotAnError(t *testing.T) {
	tsd := newTestSpyDevice(testVolumeSize)
	tsd.syncPanic = "device went away"

	f := NewFormatter(tsd, getTestParameters(testVolumeSize, ""))

	err := f.Format()
	if err == nil {
		t.Fatalf("Expected error from failed sync.")
	} else if strings.Contains(err.Error(), "Error not an error: [string] [device went away]") != true {
		t.Fatalf("Error not correct: [%s]", err)
	}
}

func TestFormatter_Registry(t *testing.T) {
	f := NewFormatter(newTestSpyDevice(testVolumeSize), getTestParameters(testVolumeSize, ""))

	if f.Registry().End() != 143360 {
		t.Fatalf("Registry not correct.")
	}
}

func TestFormatter_ProgressDefault(t *testing.T) {
	f := NewFormatter(newTestSpyDevice(testVolumeSize), getTestParameters(testVolumeSize, ""))

	if f.progress != ioutil.Discard {
		t.Fatalf("Progress writer not defaulted.")
	}
}
