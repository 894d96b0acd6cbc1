package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/mapc/internal/plan"
	"github.com/roach88/mapc/internal/planio"
)

// emitPlan renders g as a JSON snapshot and, when sourcePath names a real
// file and --json wasn't requested, also writes a Graphviz DOT rendering
// alongside it in an output folder named after sourcePath's stem plus
// opts.OutputFolderSuffix. stdin input (sourcePath == "") always prints
// JSON, since there is no file stem to derive an output folder from.
func emitPlan(opts *RootOptions, g *plan.Graph, sourcePath string, w io.Writer, logger *slog.Logger) error {
	data, err := planio.EncodeJSON(g)
	if err != nil {
		return err
	}

	if opts.JSON || sourcePath == "" {
		_, err := w.Write(data)
		return err
	}

	outDir := strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath)) + opts.OutputFolderSuffix
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "plan.json"), data, 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "plan.dot"), []byte(planio.EncodeDOT(g)), 0o644); err != nil {
		return err
	}

	logger.Info("wrote plan", slog.String("dir", outDir), slog.Int("nodes", g.NodeCount()))
	fmt.Fprintf(w, "compiled %s -> %s (%d nodes)\n", sourcePath, outDir, g.NodeCount())
	return nil
}
