package exfat

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/dsoprea/go-logging"
)

const (
	directoryEntryBytesCount = 32
)

var (
	directoryLogger = log.NewLogger("exfat.directory")
)

var (
	ErrNoVolumeLabelEntry = errors.New("root directory has no volume-label entry")
)

// DirectoryEntrySet is a primary entry along with the secondary entries that
// it claims.
type DirectoryEntrySet struct {
	Primary     DirectoryEntry
	Secondaries []DirectoryEntry

	// Offset is the position of the primary entry from the start of the
	// volume.
	Offset int64
}

// File returns the file entry if this is a file or directory set.
func (des DirectoryEntrySet) File() *ExfatFileDirectoryEntry {
	fdf, _ := des.Primary.(*ExfatFileDirectoryEntry)
	return fdf
}

// Stream returns the stream-extension entry of a file set, if present.
func (des DirectoryEntrySet) Stream() *ExfatStreamExtensionDirectoryEntry {
	for _, de := range des.Secondaries {
		if sede, ok := de.(*ExfatStreamExtensionDirectoryEntry); ok == true {
			return sede
		}
	}

	return nil
}

// Name assembles the name of a file set from its name entries.
func (des DirectoryEntrySet) Name() string {
	return MultipartFilename(des.Secondaries).Filename()
}

// IsDirectory indicates a file set that describes a directory.
func (des DirectoryEntrySet) IsDirectory() bool {
	fdf := des.File()
	return fdf != nil && fdf.FileAttributes.IsDirectory() == true
}

func (des DirectoryEntrySet) String() string {
	return fmt.Sprintf("DirectoryEntrySet<TYPE=[%s] SECONDARIES=(%d) OFFSET=(0x%x)>", des.Primary.TypeName(), len(des.Secondaries), des.Offset)
}

// Directory is the decoded content of one directory, read up to its
// end-of-directory entry.
type Directory struct {
	Sets []DirectoryEntrySet

	// Clusters were read, in chain order.
	Clusters []uint32

	label       *ExfatVolumeLabelDirectoryEntry
	labelOffset int64
}

// ReadDirectory decodes the directory whose data starts at `firstCluster`.
// `useFat` is false for contiguous (NoFatChain) directories.
func ReadDirectory(er *ExfatReader, firstCluster uint32, useFat bool) (dir *Directory, err error) {
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

	dir = &Directory{
		Sets:     make([]DirectoryEntrySet, 0),
		Clusters: make([]uint32, 0),
	}

	sectorSize := int64(er.SectorSize())
	isDone := false

	var current *DirectoryEntrySet
	expected := 0

	svf := func(sectorNumber uint32, data []byte) (doContinue bool, err error) {
		for i := 0; i+directoryEntryBytesCount <= len(data); i += directoryEntryBytesCount {
			raw := data[i : i+directoryEntryBytesCount]
			offset := int64(sectorNumber)*sectorSize + int64(i)

			entryType := EntryType(raw[0])

			if entryType.IsEndOfDirectory() == true {
				isDone = true
				return false, nil
			}

			isLabel := entryType.NotInUse() == EntryTypeVolumeLabel.NotInUse()

			// Deleted entries are skipped but the label entry is remembered
			// whether or not it is in use, so that it can be set again.
			if entryType.IsInUse() == false && isLabel == false {
				continue
			}

			de, err := parseDirectoryEntry(entryType, raw)
			if err != nil {
				return false, err
			}

			if isLabel == true {
				dir.label = de.(*ExfatVolumeLabelDirectoryEntry)
				dir.labelOffset = offset

				if entryType.IsInUse() == false {
					continue
				}
			}

			if entryType.IsPrimary() == true {
				if current != nil {
					directoryLogger.Warningf(nil, "Entry-set at (0x%x) is missing (%d) secondary entries.", current.Offset, expected-len(current.Secondaries))
				}

				current = &DirectoryEntrySet{
					Primary:     de,
					Secondaries: make([]DirectoryEntry, 0),
					Offset:      offset,
				}

				expected = 0
				if pde, ok := de.(PrimaryDirectoryEntry); ok == true {
					expected = int(pde.SecondaryCount())
				}
			} else if current == nil {
				directoryLogger.Warningf(nil, "Secondary entry at (0x%x) has no primary entry.", offset)
				continue
			} else {
				current.Secondaries = append(current.Secondaries, de)
			}

			if len(current.Secondaries) == expected {
				dir.Sets = append(dir.Sets, *current)
				current = nil
			}
		}

		return true, nil
	}

	cvf := func(ec *ExfatCluster) (doContinue bool, err error) {
		dir.Clusters = append(dir.Clusters, ec.ClusterNumber())

		err = ec.EnumerateSectors(svf)
		if err != nil {
			return false, err
		}

		return isDone == false, nil
	}

	err = er.EnumerateClusters(firstCluster, cvf, useFat)
	log.PanicIf(err)

	return dir, nil
}

// ReadRootDirectory decodes the root directory. It always has a FAT chain.
func ReadRootDirectory(er *ExfatReader) (dir *Directory, err error) {
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

	dir, err = ReadDirectory(er, er.FirstClusterOfRootDirectory(), true)
	log.PanicIf(err)

	return dir, nil
}

// Files returns the file and directory sets.
func (dir *Directory) Files() []DirectoryEntrySet {
	files := make([]DirectoryEntrySet, 0)

	for _, des := range dir.Sets {
		if des.File() != nil {
			files = append(files, des)
		}
	}

	return files
}

// AllocationBitmap returns the allocation-bitmap entry. Only a root directory
// has one.
func (dir *Directory) AllocationBitmap() *ExfatAllocationBitmapDirectoryEntry {
	for _, des := range dir.Sets {
		if abde, ok := des.Primary.(*ExfatAllocationBitmapDirectoryEntry); ok == true {
			return abde
		}
	}

	return nil
}

// UpcaseTable returns the up-case table entry. Only a root directory has one.
func (dir *Directory) UpcaseTable() *ExfatUpcaseTableDirectoryEntry {
	for _, des := range dir.Sets {
		if utde, ok := des.Primary.(*ExfatUpcaseTableDirectoryEntry); ok == true {
			return utde
		}
	}

	return nil
}

// VolumeLabel returns the label entry, in use or not, and its offset on the
// volume.
func (dir *Directory) VolumeLabel() (vlde *ExfatVolumeLabelDirectoryEntry, offset int64, err error) {
	if dir.label == nil {
		return nil, 0, ErrNoVolumeLabelEntry
	}

	return dir.label, dir.labelOffset, nil
}

// Dump prints every entry-set.
func (dir *Directory) Dump() {
	fmt.Printf("Directory\n")
	fmt.Printf("=========\n")
	fmt.Printf("\n")

	fmt.Printf("Clusters: %v\n", dir.Clusters)
	fmt.Printf("\n")

	for i, des := range dir.Sets {
		fmt.Printf("# %d: %s\n", i, des.Primary)

		for j, de := range des.Secondaries {
			fmt.Printf("  (%d) %s\n", j, de)
		}

		if fdf := des.File(); fdf != nil {
			fmt.Printf("  Name: [%s]\n", des.Name())
			fdf.FileAttributes.DumpBareIndented("  ")
		}

		fmt.Printf("\n")
	}
}
