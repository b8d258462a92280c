package pkg

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/rotisserie/eris"
	"github.com/ulikunitz/xz"
)

// WriteBundle packs the content of the passed directory into an archive for
// distribution. The format is picked from the archive's file extension:
// .zip, .tar.gz, .tar.xz or .tar.br.
func WriteBundle(archivePath, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return eris.Wrapf(err, "could not stat %s", dir)
	}
	if !info.IsDir() {
		return eris.Errorf("%s is not a directory", dir)
	}

	if strings.HasSuffix(archivePath, ".zip") {
		return writeZipBundle(archivePath, dir)
	}

	compressor, err := getCompressor(archivePath)
	if err != nil {
		return err
	}

	return writeTarBundle(archivePath, dir, compressor)
}

func getCompressor(archivePath string) (func(io.Writer) (io.WriteCloser, error), error) {
	if strings.HasSuffix(archivePath, ".tar.gz") {
		return func(w io.Writer) (io.WriteCloser, error) {
			return gzip.NewWriter(w), nil
		}, nil
	}

	if strings.HasSuffix(archivePath, ".tar.xz") {
		return func(w io.Writer) (io.WriteCloser, error) {
			return xz.NewWriter(w)
		}, nil
	}

	if strings.HasSuffix(archivePath, ".tar.br") {
		return func(w io.Writer) (io.WriteCloser, error) {
			return brotli.NewWriterLevel(w, brotli.BestCompression), nil
		}, nil
	}

	return nil, eris.Errorf("archive format of %s not supported", archivePath)
}

func bundleEntries(dir string, visit func(relPath string, info os.FileInfo, f *os.File) error) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return eris.Wrapf(err, "failed to read %s", path)
		}

		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			return eris.Wrapf(err, "failed to resolve %s", path)
		}

		f, err := os.Open(path)
		if err != nil {
			return eris.Wrapf(err, "failed to open file %s", path)
		}
		defer f.Close()

		return visit(filepath.ToSlash(relPath), info, f)
	})
}

func writeZipBundle(archivePath, dir string) error {
	hdl, err := os.Create(archivePath)
	if err != nil {
		return eris.Wrapf(err, "failed to create %s", archivePath)
	}

	writer := zip.NewWriter(hdl)
	err = bundleEntries(dir, func(relPath string, info os.FileInfo, f *os.File) error {
		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return eris.Wrapf(err, "failed to build entry for %s", relPath)
		}

		header.Name = relPath
		header.Method = zip.Deflate
		entry, err := writer.CreateHeader(header)
		if err != nil {
			return eris.Wrapf(err, "failed to create entry %s", relPath)
		}

		_, err = io.Copy(entry, f)
		if err != nil {
			return eris.Wrapf(err, "failed to pack file %s", relPath)
		}

		return nil
	})
	if err != nil {
		writer.Close()
		hdl.Close()
		return err
	}

	err = writer.Close()
	if err != nil {
		hdl.Close()
		return eris.Wrapf(err, "failed to finish %s", archivePath)
	}

	return hdl.Close()
}

func writeTarBundle(archivePath, dir string, compressor func(io.Writer) (io.WriteCloser, error)) error {
	hdl, err := os.Create(archivePath)
	if err != nil {
		return eris.Wrapf(err, "failed to create %s", archivePath)
	}

	comp, err := compressor(hdl)
	if err != nil {
		hdl.Close()
		return eris.Wrapf(err, "failed to prepare compressor for %s", archivePath)
	}

	writer := tar.NewWriter(comp)
	err = bundleEntries(dir, func(relPath string, info os.FileInfo, f *os.File) error {
		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return eris.Wrapf(err, "failed to build entry for %s", relPath)
		}

		header.Name = relPath
		err = writer.WriteHeader(header)
		if err != nil {
			return eris.Wrapf(err, "failed to create entry %s", relPath)
		}

		_, err = io.Copy(writer, f)
		if err != nil {
			return eris.Wrapf(err, "failed to pack file %s", relPath)
		}

		return nil
	})
	if err != nil {
		writer.Close()
		comp.Close()
		hdl.Close()
		return err
	}

	err = writer.Close()
	if err == nil {
		err = comp.Close()
	}
	if err != nil {
		hdl.Close()
		return eris.Wrapf(err, "failed to finish %s", archivePath)
	}

	return hdl.Close()
}
