package exfat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dsoprea/go-logging"
)

func TestBuildSuperBlock(t *testing.T) {
	rr := NewRegionRegistry(getTestParameters(testVolumeSize, ""))

	bsh, err := BuildSuperBlock(rr)
	log.PanicIf(err)

	if bytes.Equal(bsh.JumpBoot[:], requiredJumpBootSignature) != true {
		t.Fatalf("Jump-boot not correct: %x", bsh.JumpBoot)
	} else if string(bsh.FileSystemName[:]) != "EXFAT   " {
		t.Fatalf("File-system name not correct: [%s]", string(bsh.FileSystemName[:]))
	} else if bsh.VolumeLength != 131072 {
		t.Fatalf("Volume length not correct: (%d)", bsh.VolumeLength)
	} else if bsh.FatOffset != 128 {
		t.Fatalf("FAT offset not correct: (%d)", bsh.FatOffset)
	} else if bsh.FatLength != 128 {
		t.Fatalf("FAT length not correct: (%d)", bsh.FatLength)
	} else if bsh.ClusterHeapOffset != 256 {
		t.Fatalf("Cluster-heap offset not correct: (%d)", bsh.ClusterHeapOffset)
	} else if bsh.ClusterCount != 16352 {
		t.Fatalf("Cluster count not correct: (%d)", bsh.ClusterCount)
	} else if bsh.FirstClusterOfRootDirectory != 4 {
		t.Fatalf("Root cluster not correct: (%d)", bsh.FirstClusterOfRootDirectory)
	} else if bsh.VolumeSerialNumber != testVolumeSerial {
		t.Fatalf("Serial not correct: (0x%08x)", bsh.VolumeSerialNumber)
	} else if bsh.FileSystemRevision != [2]uint8{0, 1} {
		t.Fatalf("Revision not correct: %v", bsh.FileSystemRevision)
	} else if bsh.BytesPerSectorShift != 9 || bsh.SectorsPerClusterShift != 3 {
		t.Fatalf("Shifts not correct: (%d) (%d)", bsh.BytesPerSectorShift, bsh.SectorsPerClusterShift)
	} else if bsh.NumberOfFats != 1 {
		t.Fatalf("FAT count not correct: (%d)", bsh.NumberOfFats)
	} else if bsh.DriveSelect != 0x80 {
		t.Fatalf("Drive-select not correct: (0x%02x)", bsh.DriveSelect)
	} else if bsh.PercentInUse != 0 {
		t.Fatalf("Percent-in-use not correct: (%d)", bsh.PercentInUse)
	} else if bsh.VolumeFlags != 0 {
		t.Fatalf("Volume flags not correct: (%d)", bsh.VolumeFlags)
	} else if bsh.BootSignature != 0xaa55 {
		t.Fatalf("Boot signature not correct: (0x%04x)", bsh.BootSignature)
	}
}

func TestBuildSuperBlock_Invariants(t *testing.T) {
	sizes := []uint64{
		1024 * 1024,
		testVolumeSize,
		300 * 1024 * 1024,
		33 * 1024 * 1024 * 1024,
	}

	for _, volumeSize := range sizes {
		rr := NewRegionRegistry(getTestParameters(volumeSize, ""))

		bsh, err := BuildSuperBlock(rr)
		log.PanicIf(err)

		if bsh.FatOffset+bsh.FatLength != bsh.ClusterHeapOffset {
			t.Fatalf("FAT does not end at the heap for volume (%d).", volumeSize)
		} else if uint64(bsh.FatLength)*uint64(bsh.SectorSize()) < (uint64(bsh.ClusterCount)+2)*4 {
			t.Fatalf("FAT too small for volume (%d).", volumeSize)
		}

		heapEnd := uint64(bsh.ClusterHeapOffset) + uint64(bsh.ClusterCount)*uint64(bsh.SectorsPerCluster())
		if heapEnd > bsh.VolumeLength {
			t.Fatalf("Heap runs past the volume for volume (%d).", volumeSize)
		}
	}
}

func TestBuildSuperBlock_SmallVolume(t *testing.T) {
	rr := NewRegionRegistry(getTestParameters(1024*1024, ""))

	bsh, err := BuildSuperBlock(rr)
	log.PanicIf(err)

	if bsh.FatLength != 8 {
		t.Fatalf("FAT length not correct: (%d)", bsh.FatLength)
	} else if bsh.ClusterHeapOffset != 136 {
		t.Fatalf("Cluster-heap offset not correct: (%d)", bsh.ClusterHeapOffset)
	} else if bsh.ClusterCount != 239 {
		t.Fatalf("Cluster count not correct: (%d)", bsh.ClusterCount)
	}
}

func TestBuildBootRegion(t *testing.T) {
	rr := NewRegionRegistry(getTestParameters(testVolumeSize, ""))

	sectors, checksum, err := BuildBootRegion(rr)
	log.PanicIf(err)

	if len(sectors) != bootRegionSectorCount {
		t.Fatalf("Sector count not correct: (%d)", len(sectors))
	}

	for i, sector := range sectors {
		if len(sector) != 512 {
			t.Fatalf("Sector (%d) size not correct: (%d)", i, len(sector))
		}
	}

	if sectors[0][510] != 0x55 || sectors[0][511] != 0xaa {
		t.Fatalf("Boot signature not at end of super-block.")
	}

	for i := 1; i <= mainExtendedBootSectorCount; i++ {
		if bytes.Equal(sectors[i][508:], []byte{0x00, 0x00, 0x55, 0xaa}) != true {
			t.Fatalf("Extended boot signature (%d) not correct: %x", i, sectors[i][508:])
		}
	}

	for i := mainExtendedBootSectorCount + 1; i < bootRegionSectorCount-1; i++ {
		if bytes.Equal(sectors[i], make([]byte, 512)) != true {
			t.Fatalf("Reserved sector (%d) not empty.", i)
		}
	}

	// Recompute independently.
	expected := BootChecksumStart(sectors[0])
	for i := 1; i < bootRegionSectorCount-1; i++ {
		expected = BootChecksumAdd(sectors[i], expected)
	}

	if checksum != expected {
		t.Fatalf("Checksum not correct: (0x%08x) != (0x%08x)", checksum, expected)
	}

	checksumSector := sectors[bootRegionSectorCount-1]
	for i := 0; i < 512; i += 4 {
		if defaultEncoding.Uint32(checksumSector[i:]) != checksum {
			t.Fatalf("Checksum sector word (%d) not correct.", i/4)
		}
	}
}

func TestBuildBootRegion_KnownChecksum(t *testing.T) {
	rr := NewRegionRegistry(getTestParameters(testVolumeSize, ""))

	_, checksum, err := BuildBootRegion(rr)
	log.PanicIf(err)

	// 64 MiB, serial 0x12345678, 4 KiB clusters.
	if checksum != 0x291ad907 {
		t.Fatalf("Checksum not correct: (0x%08x)", checksum)
	}

	// The label lives in the root directory and does not change the VBR.
	rr = NewRegionRegistry(getTestParameters(testVolumeSize, "TESTVOLUME"))

	_, checksum, err = BuildBootRegion(rr)
	log.PanicIf(err)

	if checksum != 0x291ad907 {
		t.Fatalf("Checksum with label not correct: (0x%08x)", checksum)
	}
}

func TestBuildBootRegion_VolatileFieldsExcluded(t *testing.T) {
	rr := NewRegionRegistry(getTestParameters(testVolumeSize, ""))

	sectors, checksum, err := BuildBootRegion(rr)
	log.PanicIf(err)

	sectors[0][volumeFlagsOffset] = 0x02
	sectors[0][percentInUseOffset] = 50

	recalculated := BootChecksumStart(sectors[0])
	for i := 1; i < bootRegionSectorCount-1; i++ {
		recalculated = BootChecksumAdd(sectors[i], recalculated)
	}

	if recalculated != checksum {
		t.Fatalf("Volatile fields changed the checksum.")
	}
}

func TestBootRegion_Write_Failure(t *testing.T) {
	rr := NewRegionRegistry(getTestParameters(testVolumeSize, ""))

	cases := map[int]string{
		0:  "super-block",
		3:  "boot-signature",
		9:  "reserved",
		11: "checksum",
	}

	for failAt, role := range cases {
		d := newTestSpyDevice(testVolumeSize)
		d.failAt = failAt

		err := rr.Region(RegionPrimaryVbr).Write(d, 0, rr)
		if err == nil {
			t.Fatalf("Expected failure at sector (%d).", failAt)
		} else if strings.Contains(err.Error(), "could not write "+role+" sector") != true {
			t.Fatalf("Error for sector (%d) not correct: [%s]", failAt, err)
		}
	}
}
