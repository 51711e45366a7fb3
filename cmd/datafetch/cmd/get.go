package cmd

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/argkit/pkg/fileutil"
	"github.com/dmitrymomot/argkit/pkg/flagval"
	"github.com/dmitrymomot/argkit/pkg/sanitizer"
	"github.com/dmitrymomot/argkit/pkg/validator"
)

var (
	getURL      string
	getManifest flagval.FilePath
	getOutDir   flagval.DirPath
	getProxy    flagval.ProxyURL
	getChecksum string
	getExtract  bool
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Download one dataset or every dataset in a manifest",
	Example: `  datafetch get --url https://example.com/conll2000.zip --extract
  datafetch get --manifest datasets.yaml --output-dir ./data
  datafetch get --url http://host/corpus.txt --checksum 9f86d08...`,
	RunE: runGet,
}

func init() {
	getCmd.Flags().StringVar(&getURL, "url", "", "dataset URL to download")
	getCmd.Flags().Var(&getManifest, "manifest", "YAML manifest listing datasets to fetch")
	getCmd.Flags().Var(&getOutDir, "output-dir", "directory to download into (must exist)")
	getCmd.Flags().Var(&getProxy, "proxy", "proxy URL for the download")
	getCmd.Flags().StringVar(&getChecksum, "checksum", "", "expected hex SHA-256 of the download")
	getCmd.Flags().BoolVar(&getExtract, "extract", false, "unzip the downloaded archive in place")
	getCmd.MarkFlagsMutuallyExclusive("url", "manifest")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	outDir := string(getOutDir)
	if outDir == "" {
		var err error
		outDir, err = validator.ValidateExistingDirectory(cfg.OutputDir)
		if err != nil {
			return err
		}
	}

	proxy := string(getProxy)
	if proxy == "" {
		proxy = cfg.Proxy
	}

	datasets, err := resolveDatasets()
	if err != nil {
		return err
	}

	for _, d := range datasets {
		if err := fetchDataset(cmd, d, outDir, proxy); err != nil {
			return fmt.Errorf("dataset %s: %w", d.Name, err)
		}
	}

	return nil
}

// resolveDatasets turns the flag combination into a validated dataset list.
func resolveDatasets() ([]Dataset, error) {
	if getManifest != "" {
		m, err := loadManifest(string(getManifest))
		if err != nil {
			return nil, err
		}
		return m.Datasets, nil
	}

	if getURL == "" {
		return nil, fmt.Errorf("%w: either --url or --manifest is required", validator.ErrInvalidValue)
	}

	d := Dataset{
		Name:     nameFromURL(getURL),
		URL:      getURL,
		Checksum: getChecksum,
		Extract:  getExtract,
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return []Dataset{d}, nil
}

func fetchDataset(cmd *cobra.Command, d Dataset, outDir, proxy string) error {
	dest := filepath.Join(outDir, sanitizer.Filename(d.Name))

	opts := []fileutil.DownloadOption{
		fileutil.WithProgressOutput(cmd.ErrOrStderr()),
	}
	if proxy != "" {
		opts = append(opts, fileutil.WithProxy(proxy))
	}
	if d.Checksum != "" {
		opts = append(opts, fileutil.WithChecksum(d.Checksum))
	}

	log.Info("downloading", "url", d.URL, "dest", dest)
	res, err := fileutil.Download(cmd.Context(), d.URL, dest, opts...)
	if err != nil {
		return err
	}
	log.Info("download complete", "path", res.Path, "bytes", res.Size, "sha256", res.SHA256)

	if !d.Extract {
		return nil
	}

	extractDir := strings.TrimSuffix(res.Path, filepath.Ext(res.Path))
	files, err := fileutil.Unzip(cmd.Context(), res.Path, extractDir)
	if err != nil {
		return err
	}
	log.Info("extracted", "archive", res.Path, "dir", extractDir, "files", len(files))

	return nil
}

// nameFromURL derives a destination filename from the URL path.
func nameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" || u.Path == "/" {
		return "download"
	}
	return path.Base(u.Path)
}
