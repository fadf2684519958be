package exfat

import (
	"strings"
	"testing"

	"github.com/dsoprea/go-logging"
)

func TestBuildFat(t *testing.T) {
	rr := NewRegionRegistry(getTestParameters(testVolumeSize, ""))

	entries, err := BuildFat(rr)
	log.PanicIf(err)

	expected := []MappedCluster{
		ClusterMediaDescriptor,
		ClusterEndOfChain,
		ClusterEndOfChain,
		ClusterEndOfChain,
		ClusterEndOfChain,
	}

	if len(entries) != len(expected) {
		t.Fatalf("Entry count not correct: (%d)", len(entries))
	}

	for i, entry := range entries {
		if entry != expected[i] {
			t.Fatalf("Entry (%d) not correct: (0x%08x)", i, uint32(entry))
		}
	}
}

func TestBuildFat_MultiClusterChains(t *testing.T) {
	// 512-byte clusters spread the bitmap over four clusters and the up-case
	// table over eight.
	vp, err := NewVolumeParameters(DefaultSectorBits, 0, 8*1024*1024, "", testVolumeSerial, 0)
	log.PanicIf(err)

	rr := NewRegionRegistry(vp)

	if rr.SizeOf(RegionClusterBitmap) != 2016 {
		t.Fatalf("Bitmap size not correct: (%d)", rr.SizeOf(RegionClusterBitmap))
	}

	entries, err := BuildFat(rr)
	log.PanicIf(err)

	// Bitmap: 2-5. Up-case: 6-13. Root: 14.
	expected := []MappedCluster{
		ClusterMediaDescriptor,
		ClusterEndOfChain,
		3, 4, 5, ClusterEndOfChain,
		7, 8, 9, 10, 11, 12, 13, ClusterEndOfChain,
		ClusterEndOfChain,
	}

	if len(entries) != len(expected) {
		t.Fatalf("Entry count not correct: (%d)", len(entries))
	}

	for i, entry := range entries {
		if entry != expected[i] {
			t.Fatalf("Entry (%d) not correct: (0x%08x) != (0x%08x)", i, uint32(entry), uint32(expected[i]))
		}
	}
}

func TestFatBuilder_Overflow(t *testing.T) {
	defer func() {
		errRaw := recover()
		if errRaw == nil {
			t.Fatalf("Expected overflow.")
		} else if log.Is(errRaw.(error), ErrClusterOverflow) != true {
			t.Fatalf("Error not correct: [%s]", errRaw)
		}
	}()

	fb := &fatBuilder{
		clusterSize: 4096,
		cluster:     0xfffffffe,
	}

	fb.addChain(3 * 4096)
}

func TestMappedCluster(t *testing.T) {
	if ClusterEndOfChain.IsLast() != true {
		t.Fatalf("End-of-chain not last.")
	} else if ClusterBad.IsBad() != true {
		t.Fatalf("Bad cluster not bad.")
	} else if MappedCluster(0).IsFree() != true {
		t.Fatalf("Zero not free.")
	} else if MappedCluster(5).IsLast() == true || MappedCluster(5).IsBad() == true || MappedCluster(5).IsFree() == true {
		t.Fatalf("Regular cluster misclassified.")
	}
}

func TestFatRegion_Write_Failure(t *testing.T) {
	rr := NewRegionRegistry(getTestParameters(testVolumeSize, ""))

	d := newTestSpyDevice(testVolumeSize)
	d.failAt = 0

	err := rr.Region(RegionFat).Write(d, rr.PositionOf(RegionFat), rr)
	if err == nil {
		t.Fatalf("Expected write failure.")
	} else if strings.Contains(err.Error(), "could not write (5) FAT entries") != true {
		t.Fatalf("Error not correct: [%s]", err)
	}
}
