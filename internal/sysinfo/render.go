package sysinfo

import (
	"errors"
	"fmt"
	"io"

	"github.com/lakshaymaurya-felt/pccare/internal/core"
	"github.com/lakshaymaurya-felt/pccare/internal/ui"
)

func field(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", ui.LabelStyle.Render(label+":"), ui.ValueStyle.Render(value))
}

func section(w io.Writer, name string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.SubmenuStyle.Render(ui.SectionTitle(name)))
}

func unavailable(w io.Writer, what string) {
	fmt.Fprintln(w, "  "+ui.ErrorStyle.Render(fmt.Sprintf("Could not retrieve %s info.", what)))
}

// Render prints the report in four sections. Sections that failed print a
// "Could not retrieve" line; the GPU section is omitted when unsupported.
func Render(w io.Writer, r Report) {
	section(w, "System & OS")
	if r.OSErr != nil {
		unavailable(w, "OS")
	} else {
		sys := r.OS.System
		if r.OS.Release != "" {
			sys += " " + r.OS.Release
		}
		if r.OS.Version != "" {
			sys += " (" + r.OS.Version + ")"
		}
		field(w, "System", sys)
		field(w, "Computer", r.OS.Hostname)
		field(w, "Architecture", r.OS.Arch)
	}

	section(w, "CPU")
	if r.CPUErr != nil {
		unavailable(w, "CPU")
	} else {
		field(w, "Processor", r.CPU.Model)
		field(w, "Cores", fmt.Sprintf("%d Physical, %d Logical", r.CPU.Physical, r.CPU.Logical))
	}

	section(w, "Memory (RAM)")
	if r.MemoryErr != nil {
		unavailable(w, "RAM")
	} else {
		field(w, "Total", fmt.Sprintf("%s | Used: %s (%.1f%%)",
			core.FormatGB(r.Memory.Total), core.FormatGB(r.Memory.Used), r.Memory.UsedPercent))
	}

	if !errors.Is(r.GPUErr, core.ErrUnsupported) {
		section(w, "Graphics (GPU)")
		if r.GPUErr != nil {
			unavailable(w, "GPU")
		} else {
			for i, name := range r.GPUs {
				field(w, fmt.Sprintf("GPU %d", i), name)
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.TitleStyle.Render("--- Report Complete! ---"))
}
