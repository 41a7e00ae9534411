package commands

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/desktop-next/desktopcli/display"
)

// DoctorInfo reports the tool's environment for troubleshooting: which of the
// required display utilities are installed and what the target display says
// about itself.
type DoctorInfo struct {
	DesktopCLIVersion string        `json:"desktopcli_version"`
	OS                string        `json:"os"`
	Display           string        `json:"display"`
	XdotoolPath       string        `json:"xdotool_path"`
	XdotoolVersion    string        `json:"xdotool_version,omitempty"`
	ScrotPath         string        `json:"scrot_path,omitempty"`
	ImportPath        string        `json:"import_path,omitempty"`
	XdpyinfoPath      string        `json:"xdpyinfo_path,omitempty"`
	ScreenSize        *display.Size `json:"screenSize,omitempty"`
	Warnings          []string      `json:"warnings,omitempty"`
}

// DoctorCommand collects diagnostics. Missing utilities are reported as
// warnings, not errors; the report itself always succeeds.
func DoctorCommand(cfg Config, version string) *DoctorInfo {
	info := &DoctorInfo{
		DesktopCLIVersion: version,
		OS:                runtime.GOOS,
		Display:           cfg.Display,
	}

	if path, err := exec.LookPath("xdotool"); err == nil {
		info.XdotoolPath = path
		if output, err := exec.Command("xdotool", "version").Output(); err == nil {
			info.XdotoolVersion = strings.TrimSpace(string(output))
		}
	} else {
		info.Warnings = append(info.Warnings, "xdotool not found in PATH, input injection will fail")
	}

	if path, err := exec.LookPath("scrot"); err == nil {
		info.ScrotPath = path
	}
	if path, err := exec.LookPath("import"); err == nil {
		info.ImportPath = path
	}
	if info.ScrotPath == "" && info.ImportPath == "" {
		info.Warnings = append(info.Warnings, "no capture utility found, install scrot or imagemagick")
	}

	if path, err := exec.LookPath("xdpyinfo"); err == nil {
		info.XdpyinfoPath = path
		if size, err := backendFor(cfg).Geometry(); err == nil {
			info.ScreenSize = &size
		} else {
			info.Warnings = append(info.Warnings, "could not query display geometry: "+err.Error())
		}
	} else {
		info.Warnings = append(info.Warnings, "xdpyinfo not found in PATH, screen size must be configured explicitly")
	}

	return info
}
