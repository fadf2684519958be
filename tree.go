package exfat

import (
	"reflect"
	"sort"
	"strings"

	"github.com/dsoprea/go-logging"
)

// TreeNode is a file or directory. The root node has no entry-set.
type TreeNode struct {
	name string
	set  *DirectoryEntrySet

	// directory is the loaded content. Nil for files and for directories
	// that have no clusters.
	directory *Directory

	// children are directories first and then files, each ordered by name.
	children []*TreeNode
}

func newTreeNode(name string, set *DirectoryEntrySet) *TreeNode {
	return &TreeNode{
		name:     name,
		set:      set,
		children: make([]*TreeNode, 0),
	}
}

func (tn *TreeNode) Name() string {
	return tn.name
}

// IsDirectory is true for the root and for directory entry-sets.
func (tn *TreeNode) IsDirectory() bool {
	return tn.set == nil || tn.set.IsDirectory() == true
}

// StreamDirectoryEntry returns the stream-extension entry. This is nil for
// the root.
func (tn *TreeNode) StreamDirectoryEntry() *ExfatStreamExtensionDirectoryEntry {
	if tn.set == nil {
		return nil
	}

	return tn.set.Stream()
}

// Size returns the data-length of the node.
func (tn *TreeNode) Size() uint64 {
	if sede := tn.StreamDirectoryEntry(); sede != nil {
		return sede.DataLength
	}

	return 0
}

// Directory returns the loaded directory content.
func (tn *TreeNode) Directory() *Directory {
	return tn.directory
}

func (tn *TreeNode) Children() []*TreeNode {
	return tn.children
}

func (tn *TreeNode) sortChildren() {
	sort.Slice(tn.children, func(i, j int) bool {
		a := tn.children[i]
		b := tn.children[j]

		if a.IsDirectory() != b.IsDirectory() {
			return a.IsDirectory() == true
		}

		return a.name < b.name
	})
}

// Tree is the complete file hierarchy of a volume.
type Tree struct {
	er   *ExfatReader
	root *TreeNode

	// loaded are the first clusters of the directories that are already in
	// the tree.
	loaded map[uint32]string
}

func NewTree(er *ExfatReader) *Tree {
	return &Tree{
		er:   er,
		root: newTreeNode("", nil),
	}
}

// Root returns the root node. Its directory is the root directory once
// loaded.
func (tree *Tree) Root() *TreeNode {
	return tree.root
}

func (tree *Tree) loadDirectory(path string, node *TreeNode, dir *Directory) (err error) {
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

	node.directory = dir

	for _, des := range dir.Files() {
		set := des
		child := newTreeNode(set.Name(), &set)

		node.children = append(node.children, child)

		sede := set.Stream()

		// An empty directory may have no clusters.
		if child.IsDirectory() == false || sede == nil || sede.FirstCluster == 0 {
			continue
		}

		childPath := child.name
		if path != "" {
			childPath = path + `\` + child.name
		}

		if owner, found := tree.loaded[sede.FirstCluster]; found == true {
			log.Panicf("directory [%s] at cluster (%d) is already loaded as [%s]", childPath, sede.FirstCluster, owner)
		}

		tree.loaded[sede.FirstCluster] = childPath

		childDir, err := ReadDirectory(tree.er, sede.FirstCluster, sede.UsesFat())
		log.PanicIf(err)

		err = tree.loadDirectory(childPath, child, childDir)
		log.PanicIf(err)
	}

	node.sortChildren()

	return nil
}

// Load reads every directory on the volume.
func (tree *Tree) Load() (err error) {
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

	root, err := ReadRootDirectory(tree.er)
	log.PanicIf(err)

	tree.root = newTreeNode("", nil)
	tree.loaded = map[uint32]string{
		tree.er.FirstClusterOfRootDirectory(): `\`,
	}

	err = tree.loadDirectory("", tree.root, root)
	log.PanicIf(err)

	return nil
}

// TreeVisitorFunc receives the path of every node. The root has an empty
// path.
type TreeVisitorFunc func(pathParts []string, node *TreeNode) (err error)

// Visit calls `cb` for every node, parents before children and
// subdirectories before files.
func (tree *Tree) Visit(cb TreeVisitorFunc) (err error) {
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

	err = tree.visit(make([]string, 0), tree.root, cb)
	log.PanicIf(err)

	return nil
}

func (tree *Tree) visit(pathParts []string, node *TreeNode, cb TreeVisitorFunc) (err error) {
	err = cb(pathParts, node)
	if err != nil {
		return err
	}

	for _, child := range node.children {
		childPathParts := make([]string, len(pathParts)+1)
		copy(childPathParts, pathParts)
		childPathParts[len(pathParts)] = child.name

		err := tree.visit(childPathParts, child, cb)
		if err != nil {
			return err
		}
	}

	return nil
}

// List returns the backslash-separated path of every file and directory, in
// visiting order, and the node for each.
func (tree *Tree) List() (files []string, nodes map[string]*TreeNode, err error) {
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

	files = make([]string, 0)
	nodes = make(map[string]*TreeNode)

	cb := func(pathParts []string, node *TreeNode) (err error) {
		if len(pathParts) == 0 {
			return nil
		}

		nodePath := strings.Join(pathParts, `\`)

		files = append(files, nodePath)
		nodes[nodePath] = node

		return nil
	}

	err = tree.Visit(cb)
	log.PanicIf(err)

	return files, nodes, nil
}
