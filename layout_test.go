package exfat

import (
	"testing"

	"github.com/dsoprea/go-logging"
	"github.com/go-errors/errors"
)

func TestRegionRegistry_Layout(t *testing.T) {
	rr := NewRegionRegistry(getTestParameters(testVolumeSize, ""))

	expected := []RegionLayout{
		{Id: RegionPrimaryVbr, Alignment: 512, Size: 6144, Position: 0},
		{Id: RegionBackupVbr, Alignment: 512, Size: 6144, Position: 6144},
		{Id: RegionFat, Alignment: 65536, Size: 65536, Position: 65536},
		{Id: RegionClusterBitmap, Alignment: 4096, Size: 2044, Position: 131072},
		{Id: RegionUpcaseTable, Alignment: 4096, Size: 3750, Position: 135168},
		{Id: RegionRootDirectory, Alignment: 4096, Size: 4096, Position: 139264},
	}

	layout := rr.Layout()
	if len(layout) != len(expected) {
		t.Fatalf("Region count not correct: (%d)", len(layout))
	}

	for i, rl := range layout {
		if rl != expected[i] {
			t.Fatalf("Region (%d) not correct: %s != %s", i, rl, expected[i])
		}
	}

	if rr.End() != 143360 {
		t.Fatalf("End not correct: (%d)", rr.End())
	}
}

func TestRegionRegistry_PositionOf_Aligned(t *testing.T) {
	sizes := []uint64{
		1024 * 1024,
		testVolumeSize,
		300 * 1024 * 1024,
		33 * 1024 * 1024 * 1024,
	}

	for _, volumeSize := range sizes {
		rr := NewRegionRegistry(getTestParameters(volumeSize, ""))

		previousEnd := uint64(0)
		for _, id := range RegionIds {
			r := rr.Region(id)
			position := rr.PositionOf(id)

			if position%r.Alignment() != 0 {
				t.Fatalf("Region %s not aligned for volume (%d): (0x%x)", id, volumeSize, position)
			} else if position < previousEnd {
				t.Fatalf("Region %s overlaps the previous region for volume (%d).", id, volumeSize)
			}

			previousEnd = position + rr.SizeOf(id)
		}

		if previousEnd != rr.End() {
			t.Fatalf("End not correct for volume (%d): (%d) != (%d)", volumeSize, rr.End(), previousEnd)
		}
	}
}

func TestRegionRegistry_CheckCapacity(t *testing.T) {
	rr := NewRegionRegistry(getTestParameters(1024*1024, ""))

	if rr.End() != 81920 {
		t.Fatalf("End not correct: (%d)", rr.End())
	}

	err := rr.CheckCapacity(1024 * 1024)
	log.PanicIf(err)
}

func TestRegionRegistry_CheckCapacity_TooSmall(t *testing.T) {
	for _, volumeSize := range []uint64{64 * 1024, 72 * 1024} {
		rr := NewRegionRegistry(getTestParameters(volumeSize, ""))

		err := rr.CheckCapacity(volumeSize)
		if err == nil {
			t.Fatalf("Expected capacity failure for (%d).", volumeSize)
		} else if log.Is(err, ErrVolumeTooSmall) != true {
			t.Fatalf("Error not correct: [%s]", err)
		}

		vtse := err.(*errors.Error).Err.(*VolumeTooSmallError)
		if vtse.Available != volumeSize {
			t.Fatalf("Available size not correct: (%d)", vtse.Available)
		} else if vtse.Required != rr.End() {
			t.Fatalf("Required size not correct: (%d)", vtse.Required)
		}
	}
}

func TestRegionRegistry_Region_Unknown(t *testing.T) {
	defer func() {
		if errRaw := recover(); errRaw == nil {
			t.Fatalf("Expected panic for unknown region.")
		}
	}()

	rr := NewRegionRegistry(getTestParameters(testVolumeSize, ""))
	rr.Region(RegionId(99))
}

func TestRegionId_String(t *testing.T) {
	if RegionFat.String() != "Fat" {
		t.Fatalf("Name not correct: [%s]", RegionFat)
	} else if RegionId(99).String() != "RegionId<(99)>" {
		t.Fatalf("Unknown name not correct: [%s]", RegionId(99))
	}
}

func TestRegionRegistry_Dump(t *testing.T) {
	rr := NewRegionRegistry(getTestParameters(testVolumeSize, "dump"))
	rr.Dump()
}
