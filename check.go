package exfat

import (
	"fmt"
	"io/ioutil"
	"reflect"
	"strings"

	"github.com/dsoprea/go-logging"
)

var (
	checkLogger = log.NewLogger("exfat.check")
)

// CheckReport is the result of a consistency check. Problems are descriptions
// of everything that was found wrong; an empty list is a clean volume.
type CheckReport struct {
	Directories int
	Files       int

	AllocatedClusters uint32
	ClusterCount      uint32

	Problems []string
}

// IsClean indicates that no problems were found.
func (cr *CheckReport) IsClean() bool {
	return len(cr.Problems) == 0
}

func (cr *CheckReport) addProblem(format string, args ...interface{}) {
	problem := fmt.Sprintf(format, args...)

	checkLogger.Warningf(nil, "%s", problem)
	cr.Problems = append(cr.Problems, problem)
}

func (cr *CheckReport) String() string {
	return fmt.Sprintf("CheckReport<DIRECTORIES=(%d) FILES=(%d) ALLOCATED=(%d)/(%d) PROBLEMS=(%d)>", cr.Directories, cr.Files, cr.AllocatedClusters, cr.ClusterCount, len(cr.Problems))
}

// Checker verifies a volume without modifying it.
type Checker struct {
	er *ExfatReader
}

// NewChecker returns a checker for a volume that has already been parsed.
func NewChecker(er *ExfatReader) *Checker {
	return &Checker{
		er: er,
	}
}

// Check validates the boot regions, the up-case table, the allocation bitmap,
// and the cluster-chains of the root directory and every file. A failure to
// read the volume at all is returned as an error.
func (c *Checker) Check() (report *CheckReport, err error) {
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

	bsh := c.er.ActiveBootRegion()

	report = &CheckReport{
		ClusterCount: bsh.ClusterCount,
		Problems:     make([]string, 0),
	}

	if c.er.UsingBackupBootRegion() == true {
		report.addProblem("main boot-region is not valid; using backup")
	} else if c.er.BackupBootRegionMatches() == false {
		report.addProblem("backup boot-region does not match main boot-region")
	}

	if bsh.VolumeFlags.IsDirty() == true {
		report.addProblem("volume is marked dirty")
	}

	table, recordedChecksum, err := LoadUpcaseTable(c.er)
	if err != nil {
		report.addProblem("up-case table not readable: %s", err)
	} else if actual := UpcaseChecksum(table); actual != recordedChecksum {
		report.addProblem("up-case table checksum is (0x%08x) but (0x%08x) is recorded", actual, recordedChecksum)
	}

	ab, err := LoadAllocationBitmap(c.er)
	log.PanicIf(err)

	report.AllocatedClusters = ab.CountAllocated()

	// Clusters claimed by a chain. Every chain is checked against the bitmap
	// and against the other chains.
	owners := make(map[uint32]string)

	claim := func(name string, firstCluster uint32, dataLength uint64, useFat bool) {
		if dataLength == 0 {
			return
		}

		clusters, _, err := c.er.WriteFromClusterChain(firstCluster, dataLength, useFat, ioutil.Discard)
		if err != nil {
			report.addProblem("[%s] cluster-chain not readable: %s", name, err)
			return
		}

		for _, clusterNumber := range clusters {
			if ab.IsAllocated(clusterNumber) == false {
				report.addProblem("[%s] uses cluster (%d) that is not allocated", name, clusterNumber)
			}

			if owner, found := owners[clusterNumber]; found == true {
				report.addProblem("[%s] uses cluster (%d) that is also used by [%s]", name, clusterNumber, owner)
			} else {
				owners[clusterNumber] = name
			}
		}
	}

	tree := NewTree(c.er)

	err = tree.Load()
	log.PanicIf(err)

	root := tree.Root().Directory()

	for _, clusterNumber := range root.Clusters {
		owners[clusterNumber] = `\`

		if ab.IsAllocated(clusterNumber) == false {
			report.addProblem("[\\] uses cluster (%d) that is not allocated", clusterNumber)
		}
	}

	if abde := root.AllocationBitmap(); abde != nil {
		claim("<allocation bitmap>", abde.FirstCluster, abde.DataLength, true)
	}

	if utde := root.UpcaseTable(); utde != nil {
		claim("<up-case table>", utde.FirstCluster, utde.DataLength, true)
	}

	cb := func(pathParts []string, node *TreeNode) (err error) {
		// The root was covered above.
		if len(pathParts) == 0 {
			return nil
		}

		name := strings.Join(pathParts, `\`)

		if node.IsDirectory() == true {
			report.Directories++
		} else {
			report.Files++
		}

		sede := node.StreamDirectoryEntry()
		if sede == nil {
			report.addProblem("[%s] has no stream-extension entry", name)
			return nil
		}

		if sede.ValidDataLength > sede.DataLength {
			report.addProblem("[%s] valid-data-length (%d) exceeds data-length (%d)", name, sede.ValidDataLength, sede.DataLength)
		}

		claim(name, sede.FirstCluster, sede.DataLength, sede.UsesFat())

		return nil
	}

	err = tree.Visit(cb)
	log.PanicIf(err)

	// Allocated clusters that nothing refers to are lost.
	for _, cr := range ab.UsedRanges() {
		for i := uint32(0); i < cr.Count; i++ {
			clusterNumber := cr.First + i
			if _, found := owners[clusterNumber]; found == false {
				report.addProblem("cluster (%d) is allocated but not used", clusterNumber)
			}
		}
	}

	return report, nil
}
