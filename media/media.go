// Package media validates and persists uploaded files under the
// static uploads root and hands back root-relative paths for storage
// in the database. Filesystem writes are not transactional with the
// database: a failed insert after a successful write leaves an
// unreferenced file behind, which is accepted.
package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

var allowedImageExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

var allowedVideoExt = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".mkv":  true,
	".webm": true,
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// AllowedImageFile reports whether the filename carries one of the
// accepted image extensions. Files without any extension are rejected.
func AllowedImageFile(filename string) bool {
	return allowedImageExt[strings.ToLower(filepath.Ext(filename))]
}

// AllowedVideoFile is the video counterpart of AllowedImageFile.
func AllowedVideoFile(filename string) bool {
	return allowedVideoExt[strings.ToLower(filepath.Ext(filename))]
}

// SanitizeFilename strips directory components and unsafe characters
// from a user-controlled filename. Returns "" when nothing safe
// remains, which callers must treat as a rejected file.
func SanitizeFilename(name string) string {
	// Take the basename for both separator conventions so traversal
	// sequences never reach the filesystem.
	name = strings.ReplaceAll(name, `\`, "/")
	name = path.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._-")
	if name == "" || name == "." || name == ".." {
		return ""
	}
	return name
}

// Store writes uploads below Root/uploads, with uploaded videos in a
// videos subdirectory. Two uploads with an identical sanitized
// filename overwrite one another; there is no cross-request
// coordination.
type Store struct {
	Root string
}

func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(root, "uploads", "videos"), 0o755); err != nil {
		return nil, err
	}
	return &Store{Root: root}, nil
}

// SaveImage persists one image upload and returns its root-relative
// path, e.g. "uploads/photo.jpg".
func (s *Store) SaveImage(src io.Reader, filename string) (string, error) {
	if !AllowedImageFile(filename) {
		return "", fmt.Errorf("disallowed image file: %s", filename)
	}
	return s.write(src, filename, "uploads")
}

// SaveVideo persists one video upload and returns its root-relative
// path, e.g. "uploads/videos/clip.mp4".
func (s *Store) SaveVideo(src io.Reader, filename string) (string, error) {
	if !AllowedVideoFile(filename) {
		return "", fmt.Errorf("disallowed video file: %s", filename)
	}
	return s.write(src, filename, "uploads", "videos")
}

func (s *Store) write(src io.Reader, filename string, subdir ...string) (string, error) {
	name := SanitizeFilename(filename)
	if name == "" {
		return "", fmt.Errorf("unusable filename: %s", filename)
	}

	dst := filepath.Join(append([]string{s.Root}, append(subdir, name)...)...)
	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", err
	}

	return path.Join(append(subdir, name)...), nil
}

// IngestImages processes a multi-file form field. Files with a
// disallowed extension or a missing filename are silently skipped;
// the returned slice preserves submission order, so the index within
// it becomes the display-order offset.
func (s *Store) IngestImages(files []*multipart.FileHeader) ([]string, error) {
	var paths []string
	for _, fh := range files {
		if fh == nil || fh.Filename == "" || !AllowedImageFile(fh.Filename) {
			continue
		}
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		p, err := s.SaveImage(f, fh.Filename)
		f.Close()
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// VideoEntry is one row of the admin video form: either an uploaded
// file (Type == "uploaded") or a provider link.
type VideoEntry struct {
	Type  string
	URL   string
	Title string
	File  *multipart.FileHeader
}

// IngestedVideo is an accepted entry ready for the content store.
type IngestedVideo struct {
	Type  string
	Path  string
	URL   string
	Title string
}

// IngestVideoEntries persists uploaded video files and passes link
// entries through. Entries with neither a usable file nor a non-empty
// URL are skipped; a missing title defaults to "Video {n}" with n the
// 1-based position among accepted entries.
func (s *Store) IngestVideoEntries(entries []VideoEntry) ([]IngestedVideo, error) {
	var accepted []IngestedVideo
	for _, e := range entries {
		var out IngestedVideo
		if e.Type == "uploaded" {
			if e.File == nil || e.File.Filename == "" || !AllowedVideoFile(e.File.Filename) {
				continue
			}
			f, err := e.File.Open()
			if err != nil {
				return nil, err
			}
			p, err := s.SaveVideo(f, e.File.Filename)
			f.Close()
			if err != nil {
				return nil, err
			}
			out = IngestedVideo{Type: "uploaded", Path: p}
		} else {
			url := strings.TrimSpace(e.URL)
			if url == "" {
				continue
			}
			out = IngestedVideo{Type: e.Type, URL: url}
		}

		out.Title = e.Title
		if out.Title == "" {
			out.Title = fmt.Sprintf("Video %d", len(accepted)+1)
		}
		accepted = append(accepted, out)
	}
	return accepted, nil
}
