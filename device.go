package exfat

import (
	"io"
	"os"
	"reflect"

	"github.com/dsoprea/go-logging"
	"github.com/spf13/afero"
)

// Device is the block-device (or image) abstraction that volumes are written
// to. Positioned writes are used by the region writers and the sequential
// writer is used by the erase pass.
type Device interface {
	io.WriterAt
	io.WriteSeeker

	// Sync flushes anything buffered by the OS to the media.
	Sync() error

	// Size returns the size of the device in bytes.
	Size() uint64
}

// FileDevice is a Device backed by a file on an afero filesystem. This is
// either a real block-device node (via `afero.NewOsFs()`) or an image.
type FileDevice struct {
	f    afero.File
	size uint64
}

// OpenDevice opens the given path. The size is established by seeking to the
// end since block devices report a zero size when stat'd.
func OpenDevice(fs afero.Fs, filepath string, writable bool) (fd *FileDevice, err error) {
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

	flag := os.O_RDONLY
	if writable == true {
		flag = os.O_RDWR
	}

	f, err := fs.OpenFile(filepath, flag, 0)
	log.PanicIf(err)

	end, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		f.Close()
		log.Panic(err)
	}

	_, err = f.Seek(0, io.SeekStart)
	if err != nil {
		f.Close()
		log.Panic(err)
	}

	fd = &FileDevice{
		f:    f,
		size: uint64(end),
	}

	return fd, nil
}

// Size returns the size of the device in bytes.
func (fd *FileDevice) Size() uint64 {
	return fd.size
}

func (fd *FileDevice) Read(p []byte) (n int, err error) {
	return fd.f.Read(p)
}

func (fd *FileDevice) ReadAt(p []byte, offset int64) (n int, err error) {
	return fd.f.ReadAt(p, offset)
}

func (fd *FileDevice) Write(p []byte) (n int, err error) {
	return fd.f.Write(p)
}

func (fd *FileDevice) WriteAt(p []byte, offset int64) (n int, err error) {
	return fd.f.WriteAt(p, offset)
}

func (fd *FileDevice) Seek(offset int64, whence int) (int64, error) {
	return fd.f.Seek(offset, whence)
}

// Sync flushes the underlying file.
func (fd *FileDevice) Sync() error {
	return fd.f.Sync()
}

// Close closes the underlying file.
func (fd *FileDevice) Close() error {
	return fd.f.Close()
}
