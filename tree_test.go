package exfat

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/dsoprea/go-logging"
)

func getTestTree() (d *FileDevice, tree *Tree) {
	d, er := getPopulatedTestVolumeAndParser()

	tree = NewTree(er)

	err := tree.Load()
	log.PanicIf(err)

	return d, tree
}

func TestTree_List(t *testing.T) {
	d, tree := getTestTree()

	defer d.Close()

	files, nodes, err := tree.List()
	log.PanicIf(err)

	expectedFiles := []string{
		"testdirectory",
		"testdirectory\\file2",
		"file1",
	}

	if reflect.DeepEqual(files, expectedFiles) != true {
		for i, filepath := range files {
			fmt.Printf("ACTUAL: (%d) [%s]\n", i, filepath)
		}

		for i, filepath := range expectedFiles {
			fmt.Printf("EXPECTED: (%d) [%s]\n", i, filepath)
		}

		t.Fatalf("Files not correct.")
	}

	actualTypes := make(map[string]bool)

	for path, node := range nodes {
		actualTypes[path] = node.IsDirectory()
	}

	expectedTypes := map[string]bool{
		"testdirectory":        true,
		"testdirectory\\file2": false,
		"file1":                false,
	}

	if reflect.DeepEqual(actualTypes, expectedTypes) != true {
		t.Fatalf("Types not correct: %v", actualTypes)
	}
}

func TestTree_List_Empty(t *testing.T) {
	d, er := getTestVolumeAndParser()

	defer d.Close()

	tree := NewTree(er)

	err := tree.Load()
	log.PanicIf(err)

	files, _, err := tree.List()
	log.PanicIf(err)

	if len(files) != 0 {
		t.Fatalf("New volume should be empty: %v", files)
	}
}

func TestTree_Root(t *testing.T) {
	d, tree := getTestTree()

	defer d.Close()

	root := tree.Root()

	if root.IsDirectory() != true {
		t.Fatalf("Root should be a directory.")
	} else if root.StreamDirectoryEntry() != nil || root.Size() != 0 {
		t.Fatalf("Root should have no stream entry.")
	} else if reflect.DeepEqual(root.Directory().Clusters, []uint32{4}) != true {
		t.Fatalf("Root clusters not correct: %v", root.Directory().Clusters)
	} else if root.Directory().AllocationBitmap() == nil {
		t.Fatalf("Root directory should have the allocation bitmap.")
	}

	children := root.Children()
	if len(children) != 2 {
		t.Fatalf("Child count not correct: (%d)", len(children))
	} else if children[0].Name() != "testdirectory" || children[0].IsDirectory() != true {
		t.Fatalf("Directory should sort first: [%s]", children[0].Name())
	} else if children[1].Name() != "file1" || children[1].IsDirectory() == true {
		t.Fatalf("File should sort last: [%s]", children[1].Name())
	} else if children[1].Size() != 11 {
		t.Fatalf("File size not correct: (%d)", children[1].Size())
	} else if children[1].Directory() != nil {
		t.Fatalf("File should have no directory.")
	}
}

func TestTree_Load_Subdirectory(t *testing.T) {
	d, tree := getTestTree()

	defer d.Close()

	node := tree.Root().Children()[0]

	if reflect.DeepEqual(node.Directory().Clusters, []uint32{5}) != true {
		t.Fatalf("Subdirectory clusters not correct: %v", node.Directory().Clusters)
	}

	children := node.Children()
	if len(children) != 1 {
		t.Fatalf("Child count not correct: (%d)", len(children))
	} else if children[0].Name() != "file2" {
		t.Fatalf("Child not correct: [%s]", children[0].Name())
	} else if children[0].Size() != 0 {
		t.Fatalf("Empty file has a size: (%d)", children[0].Size())
	}
}

func TestTree_Load_Loop(t *testing.T) {
	d, er := getPopulatedTestVolumeAndParser()

	defer d.Close()

	// A directory inside "testdirectory" that points back at it. "file2"
	// takes the first three slots.
	sede := ExfatStreamExtensionDirectoryEntry{
		GeneralSecondaryFlags: 0x01 | GeneralSecondaryFlagNoFatChain,
		FirstCluster:          5,
		DataLength:            uint64(er.ActiveBootRegion().ClusterSize()),
	}

	writeTestEntrySet(d, er, 5, 3, "loop", true, sede)

	tree := NewTree(er)

	err := tree.Load()
	if err == nil {
		t.Fatalf("Expected error for a directory loop.")
	} else if strings.Contains(err.Error(), "directory [testdirectory\\loop] at cluster (5) is already loaded as [testdirectory]") != true {
		t.Fatalf("Error not correct: [%s]", err)
	}
}

func TestTree_Load_RootLoop(t *testing.T) {
	d, er := getPopulatedTestVolumeAndParser()

	defer d.Close()

	sede := ExfatStreamExtensionDirectoryEntry{
		GeneralSecondaryFlags: 0x01,
		FirstCluster:          er.FirstClusterOfRootDirectory(),
		DataLength:            uint64(er.ActiveBootRegion().ClusterSize()),
	}

	writeTestEntrySet(d, er, 5, 3, "up", true, sede)

	tree := NewTree(er)

	err := tree.Load()
	if err == nil {
		t.Fatalf("Expected error for a loop to the root.")
	} else if strings.Contains(err.Error(), "is already loaded as [\\]") != true {
		t.Fatalf("Error not correct: [%s]", err)
	}
}

func TestTree_Visit(t *testing.T) {
	d, tree := getTestTree()

	defer d.Close()

	collected := make([][]string, 0)

	cb := func(pathParts []string, node *TreeNode) (err error) {
		collected = append(collected, pathParts)
		return nil
	}

	err := tree.Visit(cb)
	log.PanicIf(err)

	expectedCollected := [][]string{
		[]string{},
		[]string{"testdirectory"},
		[]string{"testdirectory", "file2"},
		[]string{"file1"},
	}

	if reflect.DeepEqual(collected, expectedCollected) != true {
		for i, pathParts := range collected {
			fmt.Printf("ACTUAL (%d): %v\n", i, pathParts)
		}

		for i, pathParts := range expectedCollected {
			fmt.Printf("EXPECTED (%d): %v\n", i, pathParts)
		}

		t.Fatalf("Collected paths not correct.")
	}
}

func TestTree_Visit_Error(t *testing.T) {
	d, tree := getTestTree()

	defer d.Close()

	cb := func(pathParts []string, node *TreeNode) (err error) {
		if len(pathParts) == 2 {
			return fmt.Errorf("stop")
		}

		return nil
	}

	err := tree.Visit(cb)
	if err == nil {
		t.Fatalf("Expected error from visitor.")
	}
}
