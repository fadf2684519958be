package exfat

import (
	"io"

	"github.com/dsoprea/go-logging"
	"github.com/spf13/afero"
)

const (
	testVolumeSize   = 64 * 1024 * 1024
	testVolumeSerial = 0x12345678
	testImagePath    = "/volume.img"
)

// testSpyDevice records every write and fails the write at `failAt` (if not
// negative). A non-nil `syncPanic` is raised from Sync.
type testSpyDevice struct {
	size      uint64
	position  int64
	failAt    int
	syncPanic interface{}

	writes int
	syncs  int
}

func newTestSpyDevice(size uint64) *testSpyDevice {
	return &testSpyDevice{
		size:   size,
		failAt: -1,
	}
}

func (tsd *testSpyDevice) write(p []byte) (int, error) {
	if tsd.writes == tsd.failAt {
		tsd.writes++
		return 0, io.ErrShortWrite
	}

	tsd.writes++
	return len(p), nil
}

func (tsd *testSpyDevice) Write(p []byte) (int, error) {
	n, err := tsd.write(p)
	tsd.position += int64(n)

	return n, err
}

func (tsd *testSpyDevice) WriteAt(p []byte, offset int64) (int, error) {
	return tsd.write(p)
}

func (tsd *testSpyDevice) Seek(offset int64, whence int) (int64, error) {
	tsd.position = offset
	return offset, nil
}

func (tsd *testSpyDevice) Sync() error {
	if tsd.syncPanic != nil {
		panic(tsd.syncPanic)
	}

	tsd.syncs++
	return nil
}

func (tsd *testSpyDevice) Size() uint64 {
	return tsd.size
}

// getTestParameters returns the parameters that most tests format with.
func getTestParameters(volumeSize uint64, label string) VolumeParameters {
	vp, err := NewVolumeParameters(DefaultSectorBits, AutomaticClusterBits, volumeSize, label, testVolumeSerial, 0)
	log.PanicIf(err)

	return vp
}

// createTestImage creates a zero-filled image on an in-memory filesystem.
func createTestImage(volumeSize uint64) (fs afero.Fs) {
	fs = afero.NewMemMapFs()

	f, err := fs.Create(testImagePath)
	log.PanicIf(err)

	err = f.Truncate(int64(volumeSize))
	log.PanicIf(err)

	err = f.Close()
	log.PanicIf(err)

	return fs
}

// getTestVolume formats a new in-memory volume and returns it open for
// writing.
func getTestVolume(volumeSize uint64, label string) (d *FileDevice, rr *RegionRegistry) {
	fs := createTestImage(volumeSize)

	d, err := OpenDevice(fs, testImagePath, true)
	log.PanicIf(err)

	f := NewFormatter(d, getTestParameters(volumeSize, label))

	err = f.Format()
	log.PanicIf(err)

	return d, f.Registry()
}

// getTestVolumeAndParser formats a new in-memory volume and parses it.
func getTestVolumeAndParser() (d *FileDevice, er *ExfatReader) {
	d, _ = getTestVolume(testVolumeSize, "TESTVOLUME")

	er = NewExfatReader(d)

	err := er.Parse()
	log.PanicIf(err)

	return d, er
}

// writeTestEntrySet writes a file entry-set at the given directory slot and
// returns the next free slot.
func writeTestEntrySet(d *FileDevice, er *ExfatReader, directoryCluster uint32, slot int, name string, isDirectory bool, sede ExfatStreamExtensionDirectoryEntry) int {
	offset := int64(er.ClusterOffset(directoryCluster)) + int64(slot*directoryEntryBytesCount)

	attributes := FileAttributes(0x20)
	if isDirectory == true {
		attributes = FileAttributes(0x10)
	}

	nameEntryCount := (len(name) + 14) / 15

	fdf := &ExfatFileDirectoryEntry{
		EntryType:       EntryTypeFile,
		SecondaryCount_: uint8(1 + nameEntryCount),
		FileAttributes:  attributes,
	}

	sede.EntryType = EntryTypeStreamExtension
	sede.NameLength = uint8(len(name))

	entries := []DirectoryEntry{fdf, &sede}

	for i := 0; i < nameEntryCount; i++ {
		fnde := &ExfatFileNameDirectoryEntry{
			EntryType: EntryTypeFileName,
		}

		part := name[i*15:]
		if len(part) > 15 {
			part = part[:15]
		}

		for j, c := range []byte(part) {
			fnde.FileName[j*2] = c
		}

		entries = append(entries, fnde)
	}

	for _, de := range entries {
		raw, err := packDirectoryEntry(de)
		log.PanicIf(err)

		_, err = d.WriteAt(raw, offset)
		log.PanicIf(err)

		offset += directoryEntryBytesCount
	}

	return slot + len(entries)
}

// getPopulatedTestVolumeAndParser formats a volume and then adds:
//
//   testdirectory          (cluster 5, contiguous)
//   testdirectory\file2    (empty)
//   file1                  (cluster 6, via the FAT)
//
// The bitmap and FAT are updated to match, so the volume checks clean.
func getPopulatedTestVolumeAndParser() (d *FileDevice, er *ExfatReader) {
	d, er = getTestVolumeAndParser()

	rootCluster := er.FirstClusterOfRootDirectory()
	clusterSize := uint64(er.ActiveBootRegion().ClusterSize())

	directorySede := ExfatStreamExtensionDirectoryEntry{
		GeneralSecondaryFlags: 0x01 | GeneralSecondaryFlagNoFatChain,
		FirstCluster:          5,
		DataLength:            clusterSize,
		ValidDataLength:       clusterSize,
	}

	slot := writeTestEntrySet(d, er, rootCluster, 3, "testdirectory", true, directorySede)

	fileSede := ExfatStreamExtensionDirectoryEntry{
		GeneralSecondaryFlags: 0x01,
		FirstCluster:          6,
		DataLength:            11,
		ValidDataLength:       11,
	}

	writeTestEntrySet(d, er, rootCluster, slot, "file1", false, fileSede)

	writeTestEntrySet(d, er, 5, 0, "file2", false, ExfatStreamExtensionDirectoryEntry{GeneralSecondaryFlags: 0x01})

	_, err := d.WriteAt([]byte("hello world"), int64(er.ClusterOffset(6)))
	log.PanicIf(err)

	// Clusters (2) through (6).
	bitmapOffset := int64(er.ClusterOffset(2))

	_, err = d.WriteAt([]byte{0x1f}, bitmapOffset)
	log.PanicIf(err)

	bsh := er.ActiveBootRegion()
	fatEntryOffset := int64(bsh.FatOffset)*int64(bsh.SectorSize()) + 6*fatEntrySize

	_, err = d.WriteAt([]byte{0xff, 0xff, 0xff, 0xff}, fatEntryOffset)
	log.PanicIf(err)

	er = NewExfatReader(d)

	err = er.Parse()
	log.PanicIf(err)

	return d, er
}
