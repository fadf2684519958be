package exfat

import (
	"testing"
)

func TestBootChecksumStart_SkipsVolatileFields(t *testing.T) {
	sector := make([]byte, 512)
	sector[0] = 1

	expected := BootChecksumStart(sector)

	sector[volumeFlagsOffset] = 0xff
	sector[volumeFlagsOffset+1] = 0xff
	sector[percentInUseOffset] = 0xff

	if BootChecksumStart(sector) != expected {
		t.Fatalf("Volatile fields were included.")
	}

	// The skipped bytes are not rotated either: 508 rotations of 1.
	if expected != 0x10 {
		t.Fatalf("Checksum not correct: (0x%08x)", expected)
	}

	sector[1] = 1
	if BootChecksumStart(sector) == expected {
		t.Fatalf("Regular field was not included.")
	}
}

func TestBootChecksumAdd(t *testing.T) {
	sum := BootChecksumAdd([]byte{1, 2}, 0)

	// ((0 ror 1) + 1) ror 1 + 2
	if sum != 0x80000002 {
		t.Fatalf("Checksum not correct: (0x%08x)", sum)
	}
}

func TestUpcaseChecksum(t *testing.T) {
	if UpcaseChecksum(nil) != 0 {
		t.Fatalf("Empty checksum not zero.")
	} else if UpcaseChecksum([]byte{1, 2, 3}) != 0x40000004 {
		t.Fatalf("Up-case checksum not correct: (0x%08x)", UpcaseChecksum([]byte{1, 2, 3}))
	} else if UpcaseChecksum([]byte{1, 2}) != BootChecksumAdd([]byte{1, 2}, 0) {
		t.Fatalf("Up-case checksum should be the plain rotate-add.")
	}
}
