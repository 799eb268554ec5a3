package platform

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// Sidecar extensions written by the engine while a segment is in progress.
const (
	PartExtension = ".part"
	YtdlExtension = ".ytdl"
)

// SkippedExtensions never count as a produced artifact.
var (
	SkippedExtensions = []string{PartExtension, YtdlExtension, ".vtt", ".json", ".temp"}
)

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	absPath, err := existingAbsPath(filePath)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam, absPath).Run()
	case OSLinux:
		return openFileInManagerLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileInManagerLinux opens the directory containing file on Linux.
// File selection is not standardized there, so the parent directory is shown.
func openFileInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	absPath, err := existingAbsPath(filePath)
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath).Run()
	case OSLinux:
		return exec.Command(XDGOpenCommand, absPath).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

func existingAbsPath(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("file path is empty")
	}
	if strings.HasPrefix(filePath, "http") {
		return "", fmt.Errorf("file path appears to be a URL: %s", filePath)
	}
	if _, err := os.Stat(filePath); err != nil {
		return "", fmt.Errorf("file does not exist: %w", err)
	}
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return absPath, nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Downloads"), nil
}

// FindArtifact returns the produced file for base inside dir. The engine
// reported path wins when it exists; otherwise dir is globbed for base.* and
// sidecar files are ignored. When several candidates remain the largest wins,
// which is the merged output rather than a leftover stream.
func FindArtifact(dir, base, reported string) (string, error) {
	if reported != "" {
		if fi, err := os.Stat(reported); err == nil && !fi.IsDir() {
			return reported, nil
		}
	}

	matches, err := filepath.Glob(filepath.Join(dir, globEscape(base)+".*"))
	if err != nil {
		return "", fmt.Errorf("glob %s: %w", base, err)
	}

	type candidate struct {
		path string
		size int64
	}
	var candidates []candidate
	for _, m := range matches {
		if isSkipped(m) {
			continue
		}
		fi, err := os.Stat(m)
		if err != nil || fi.IsDir() {
			continue
		}
		candidates = append(candidates, candidate{path: m, size: fi.Size()})
	}
	if len(candidates) == 0 {
		return "", os.ErrNotExist
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].size != candidates[j].size {
			return candidates[i].size > candidates[j].size
		}
		return candidates[i].path < candidates[j].path
	})
	return candidates[0].path, nil
}

// RemoveMatching deletes every file in dir named base.* and returns how many
// were removed. Errors are logged and skipped.
func RemoveMatching(dir, base string) int {
	matches, err := filepath.Glob(filepath.Join(dir, globEscape(base)+".*"))
	if err != nil {
		log.Printf("cleanup: glob %s failed: %v", base, err)
		return 0
	}
	removed := 0
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			log.Printf("cleanup: failed to remove %s: %v", m, err)
			continue
		}
		removed++
	}
	return removed
}

// RemoveSidecars deletes the .part and .ytdl files that belong to filePath.
// Removal errors are logged and swallowed.
func RemoveSidecars(filePath string) {
	if filePath == "" {
		return
	}
	base := strings.TrimSuffix(filePath, filepath.Ext(filePath))
	sidecars := []string{
		base + PartExtension,
		base + YtdlExtension,
		filePath + PartExtension,
		filePath + YtdlExtension,
	}
	for _, sidecar := range sidecars {
		if _, err := os.Stat(sidecar); err != nil {
			continue
		}
		if err := os.Remove(sidecar); err != nil {
			log.Printf("Error removing temporary file %s: %v", sidecar, err)
		}
	}
}

func isSkipped(path string) bool {
	for _, ext := range SkippedExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// globEscape quotes glob metacharacters that may appear in a base name.
func globEscape(s string) string {
	r := strings.NewReplacer(`*`, `\*`, `?`, `\?`, `[`, `\[`)
	if runtime.GOOS == OSWindows {
		return s
	}
	return r.Replace(s)
}
