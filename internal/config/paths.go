package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// localAppData returns the local app data directory.
func localAppData() string {
	return os.Getenv("LOCALAPPDATA")
}

// appData returns the roaming app data directory.
func appData() string {
	return os.Getenv("APPDATA")
}

// winDir returns the Windows directory (e.g., C:\Windows).
// %SystemRoot% wins over %WINDIR%; falls back to C:\Windows only if neither is set.
func winDir() string {
	if w := os.Getenv("SystemRoot"); w != "" {
		return w
	}
	if w := os.Getenv("WINDIR"); w != "" {
		return w
	}
	return `C:\Windows`
}

// programData returns the ProgramData directory (e.g., C:\ProgramData).
// Falls back to C:\ProgramData only if %PROGRAMDATA% is not set.
func programData() string {
	if p := os.Getenv("PROGRAMDATA"); p != "" {
		return p
	}
	return `C:\ProgramData`
}

// systemDrive returns the system drive letter with backslash (e.g., C:\).
// Falls back to C:\ only if %SYSTEMDRIVE% is not set.
func systemDrive() string {
	if d := os.Getenv("SYSTEMDRIVE"); d != "" {
		return d + `\`
	}
	return `C:\`
}

// programFiles returns the Program Files directory.
func programFiles() string {
	if p := os.Getenv("PROGRAMFILES"); p != "" {
		return p
	}
	return `C:\Program Files`
}

// programFilesX86 returns the Program Files (x86) directory.
func programFilesX86() string {
	if p := os.Getenv("PROGRAMFILES(X86)"); p != "" {
		return p
	}
	return `C:\Program Files (x86)`
}

// ─── Temp Directories ────────────────────────────────────────────────────────

// TempDirs returns the directories cleaned by "Clean Temp Files": the
// process temp dir, %LOCALAPPDATA%\Temp, %SystemRoot%\Temp and any extra
// directories from configuration. Entries are deduplicated case-insensitively
// because %TEMP% often points to %LOCALAPPDATA%\Temp.
func TempDirs(extra []string) []string {
	dirs := []string{os.TempDir()}
	if local := localAppData(); local != "" {
		dirs = append(dirs, filepath.Join(local, "Temp"))
	}
	dirs = append(dirs, filepath.Join(winDir(), "Temp"))
	dirs = append(dirs, extra...)

	seen := make(map[string]bool, len(dirs))
	var unique []string
	for _, d := range dirs {
		if strings.TrimSpace(d) == "" {
			continue
		}
		cleaned := filepath.Clean(d)
		key := strings.ToLower(cleaned)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, cleaned)
	}
	return unique
}

// ─── Helldivers 2 ────────────────────────────────────────────────────────────

// HelldiversDir returns the Helldivers 2 user data directory
// (%APPDATA%\Arrowhead\Helldivers2) unless override is set.
func HelldiversDir(override string) string {
	if override != "" {
		return filepath.Clean(override)
	}
	return filepath.Join(appData(), "Arrowhead", "Helldivers2")
}

// HelldiversShaderCache returns the shader cache directory inside dir.
func HelldiversShaderCache(dir string) string {
	return filepath.Join(dir, "shader_cache")
}

// HelldiversUserConfig returns the user settings file inside dir.
func HelldiversUserConfig(dir string) string {
	return filepath.Join(dir, "user_settings.config")
}

// ─── Protected Paths ─────────────────────────────────────────────────────────

// GetNeverDeletePaths returns paths that must NEVER be deleted under any
// circumstances. This list uses environment variables to support Windows
// installations on any drive letter (not just C:).
func GetNeverDeletePaths() []string {
	w := winDir()
	sd := systemDrive()
	return []string{
		sd,
		w,
		filepath.Join(w, "System32"),
		filepath.Join(w, "SysWOW64"),
		filepath.Join(w, "WinSxS"),
		filepath.Join(w, "assembly"),
		filepath.Join(w, "System32", "config"),
		filepath.Join(sd, "Boot"),
		filepath.Join(sd, "bootmgr"),
		filepath.Join(sd, "EFI"),
		programFiles(),
		programFilesX86(),
		filepath.Join(sd, "Users"),
		programData(),
		filepath.Join(sd, "Recovery"),
		filepath.Join(w, "Installer"),
		filepath.Join(w, "servicing"),
		filepath.Join(w, "Prefetch"),
	}
}

// protectedTrees returns never-delete directories whose entire subtree is
// off limits to temp cleaning. %SystemRoot%\Temp is the one exception.
func protectedTrees() []string {
	sd := systemDrive()
	return []string{
		winDir(),
		programFiles(),
		programFilesX86(),
		filepath.Join(sd, "Boot"),
		filepath.Join(sd, "EFI"),
		filepath.Join(sd, "Recovery"),
	}
}

// within reports whether path is root or lies below it, ignoring case.
func within(path, root string) bool {
	p := strings.ToLower(filepath.Clean(path))
	r := strings.ToLower(filepath.Clean(root))
	return p == r || strings.HasPrefix(p, strings.TrimRight(r, `\/`)+string(filepath.Separator))
}

// CheckTempDir rejects a directory that must not be emptied as a temp
// directory: a never-delete path, a parent of one, or anything inside the
// Windows or Program Files trees other than %SystemRoot%\Temp.
func CheckTempDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return fmt.Errorf("empty temp directory")
	}
	if within(dir, filepath.Join(winDir(), "Temp")) {
		return nil
	}
	for _, p := range GetNeverDeletePaths() {
		if within(p, dir) {
			return fmt.Errorf("%s is or contains protected path %s", dir, p)
		}
	}
	for _, t := range protectedTrees() {
		if within(dir, t) {
			return fmt.Errorf("%s is inside protected path %s", dir, t)
		}
	}
	return nil
}
