package exfat

import (
	"testing"

	"github.com/dsoprea/go-logging"
)

func TestBuildRootDirectoryEntries(t *testing.T) {
	rr := NewRegionRegistry(getTestParameters(testVolumeSize, "MyDisk"))

	entries := BuildRootDirectoryEntries(rr)
	if len(entries) != 3 {
		t.Fatalf("Entry count not correct: (%d)", len(entries))
	}

	vlde := entries[0].(*ExfatVolumeLabelDirectoryEntry)
	if vlde.EntryType != EntryTypeVolumeLabel {
		t.Fatalf("Label entry-type not correct: (0x%02x)", uint8(vlde.EntryType))
	} else if vlde.CharacterCount != 6 {
		t.Fatalf("Label length not correct: (%d)", vlde.CharacterCount)
	} else if vlde.Label() != "MyDisk" {
		t.Fatalf("Label not correct: [%s]", vlde.Label())
	}

	abde := entries[1].(*ExfatAllocationBitmapDirectoryEntry)
	if abde.EntryType != EntryTypeAllocationBitmap {
		t.Fatalf("Bitmap entry-type not correct.")
	} else if abde.FirstCluster != 2 {
		t.Fatalf("Bitmap cluster not correct: (%d)", abde.FirstCluster)
	} else if abde.DataLength != 2044 {
		t.Fatalf("Bitmap length not correct: (%d)", abde.DataLength)
	}

	utde := entries[2].(*ExfatUpcaseTableDirectoryEntry)
	if utde.EntryType != EntryTypeUpcaseTable {
		t.Fatalf("Up-case entry-type not correct.")
	} else if utde.FirstCluster != 3 {
		t.Fatalf("Up-case cluster not correct: (%d)", utde.FirstCluster)
	} else if utde.DataLength != 3750 {
		t.Fatalf("Up-case length not correct: (%d)", utde.DataLength)
	} else if utde.TableChecksum != 0x26212e1b {
		t.Fatalf("Up-case checksum not correct: (0x%08x)", utde.TableChecksum)
	}
}

func TestBuildRootDirectoryEntries_NoLabel(t *testing.T) {
	rr := NewRegionRegistry(getTestParameters(testVolumeSize, ""))

	vlde := BuildRootDirectoryEntries(rr)[0].(*ExfatVolumeLabelDirectoryEntry)
	if vlde.EntryType != 0x03 {
		t.Fatalf("Empty label should not be in use: (0x%02x)", uint8(vlde.EntryType))
	} else if vlde.CharacterCount != 0 {
		t.Fatalf("Label length not correct: (%d)", vlde.CharacterCount)
	}
}

func TestPackDirectoryEntry(t *testing.T) {
	rr := NewRegionRegistry(getTestParameters(testVolumeSize, "A"))

	for _, de := range BuildRootDirectoryEntries(rr) {
		raw, err := packDirectoryEntry(de)
		log.PanicIf(err)

		if len(raw) != directoryEntryBytesCount {
			t.Fatalf("Entry [%s] size not correct: (%d)", de.TypeName(), len(raw))
		}
	}

	raw, err := packDirectoryEntry(BuildRootDirectoryEntries(rr)[0])
	log.PanicIf(err)

	if raw[0] != 0x83 || raw[1] != 1 || raw[2] != 'A' || raw[3] != 0 {
		t.Fatalf("Label entry not correct: %x", raw[:4])
	}
}

func TestClusterOf(t *testing.T) {
	rr := NewRegionRegistry(getTestParameters(testVolumeSize, ""))

	if clusterOf(rr, RegionClusterBitmap) != 2 {
		t.Fatalf("Bitmap cluster not correct.")
	} else if clusterOf(rr, RegionUpcaseTable) != 3 {
		t.Fatalf("Up-case cluster not correct.")
	} else if clusterOf(rr, RegionRootDirectory) != 4 {
		t.Fatalf("Root cluster not correct.")
	}
}
