// Package output formats launch plans and results for the terminal. No
// logic lives here, only formatting.
package output

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/spinup-sh/spinup/internal/compute"
	"github.com/spinup-sh/spinup/internal/types"
)

// PrintPlan renders the resolved configuration before provisioning starts.
// The password is not shown here; it is echoed exactly once with the result.
func PrintPlan(w io.Writer, config types.InstanceConfig) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "LOCATION\tNAME\tSIZE\tIMAGE\tRESOURCE GROUP\tUSERNAME\tOS")
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		config.Location,
		config.Name,
		config.Size,
		config.Image,
		config.ResourceGroup,
		config.Username,
		config.OSFamily,
	)

	_ = tw.Flush()
	fmt.Fprintln(w, "🔒 The admin password is shown once after creation")
}

// PrintResult renders the created VM and its connection instructions. This
// is the single place the generated password is displayed.
func PrintResult(w io.Writer, config types.InstanceConfig, info *types.InstanceInfo) {
	fmt.Fprintf(w, "\n✅ Done. Public IP: %s\n\n", info.PublicIP)

	if config.OSFamily == types.OSFamilyWindows {
		fmt.Fprintf(w, "Connect over RDP:\n")
		fmt.Fprintf(w, "  mstsc /v:%s\n", info.PublicIP)
		fmt.Fprintf(w, "  username: %s\n", config.Username)
	} else {
		fmt.Fprintf(w, "Connect over SSH:\n")
		fmt.Fprintf(w, "  ssh %s@%s\n", config.Username, info.PublicIP)
	}
	fmt.Fprintf(w, "  password: %s\n", config.Password)
}

// PrintPresets renders the image preset table in preset-name order
func PrintPresets(w io.Writer) {
	names := make([]string, 0, len(compute.ImagePresets))
	for name := range compute.ImagePresets {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PRESET\tIMAGE")
	for _, name := range names {
		fmt.Fprintf(tw, "%s\t%s\n", name, compute.ImagePresets[name])
	}
	_ = tw.Flush()
}
