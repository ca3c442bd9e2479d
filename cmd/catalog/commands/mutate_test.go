// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/catalog-foundation/catalog/cmd/catalog/cli"
	"github.com/catalog-foundation/catalog/lib/catalog"
	"github.com/catalog-foundation/catalog/lib/catalog/catalogtest"
	"github.com/catalog-foundation/catalog/lib/testutil"
)

func TestDatasetCreate(t *testing.T) {
	h := newHarness(t)
	request := testutil.WriteFile(t, filepath.Join(t.TempDir(), "dataset.jsonc"), `{
	// created by the test
	"name": "proteins",
	"description": "Structures",
}`)

	output := h.mustRun(t, "dataset", "create", "-f", request)
	if !strings.Contains(output, "Action:") || !strings.Contains(output, "create dataset") || !strings.Contains(output, "succeeded") {
		t.Errorf("dataset create output:\n%s", output)
	}

	mutations := h.service.Mutations()
	if len(mutations) != 1 || mutations[0].Operation != catalogtest.OpCreateDataset {
		t.Fatalf("mutations = %+v", mutations)
	}
	if listing := h.mustRun(t, "ls", "/"); !strings.Contains(listing, "proteins") {
		t.Errorf("new dataset missing from root listing:\n%s", listing)
	}
}

func TestDatasetCreateRejectsBadRequests(t *testing.T) {
	h := newHarness(t)
	broken := testutil.WriteFile(t, filepath.Join(t.TempDir(), "broken.json"), `{"name": `)
	wantExit(t, h.run("dataset", "create", "-f", broken), cli.ExitValidation)
	wantExit(t, h.run("dataset", "create", "-f", filepath.Join(t.TempDir(), "absent.json")), cli.ExitValidation)

	// The server rejects a request without a name.
	unnamed := testutil.WriteFile(t, filepath.Join(t.TempDir(), "unnamed.json"), `{}`)
	wantExit(t, h.run("snapshot", "create", "-f", unnamed), cli.ExitValidation)

	if mutations := h.service.Mutations(); len(mutations) != 0 {
		t.Errorf("rejected requests recorded mutations: %+v", mutations)
	}
}

func TestDeleteByExactName(t *testing.T) {
	h := newHarness(t)
	// A substring match must not be mistaken for the target.
	h.service.AddCollection(catalog.KindDataset, "genomes-archive", "")

	h.mustRun(t, "dataset", "delete", "genomes")
	mutations := h.service.Mutations()
	if len(mutations) != 1 || mutations[0].Target != h.genomesID {
		t.Fatalf("mutations = %+v, want delete of %s", mutations, h.genomesID)
	}

	err := h.run("dataset", "delete", "genomes")
	wantExit(t, err, cli.ExitNotFound)
	if !strings.Contains(err.Error(), "catalog list /") {
		t.Errorf("missing hint in %v", err)
	}

	h.mustRun(t, "snapshot", "delete", "release-1")
	wantExit(t, h.run("snapshot", "delete", "legacy"), cli.ExitNotFound)
}

func TestIngestFile(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, "ingest", "file", "-s", "gs://bucket/c.bam", "-t", "/raw/c.bam", "-p", "profile-7", "genomes")

	mutations := h.service.Mutations()
	if len(mutations) != 1 {
		t.Fatalf("mutations = %+v", mutations)
	}
	request, ok := mutations[0].Request.(catalog.FileIngest)
	if !ok {
		t.Fatalf("request type = %T", mutations[0].Request)
	}
	want := catalog.FileIngest{SourcePath: "gs://bucket/c.bam", TargetPath: "/raw/c.bam", ProfileID: "profile-7"}
	if request != want {
		t.Errorf("request = %+v, want %+v", request, want)
	}

	wantExit(t, h.run("ingest", "file", "-s", "x", "-t", "y", "nonexistent"), cli.ExitNotFound)
}

func TestIngestTable(t *testing.T) {
	h := newHarness(t)
	options := testutil.WriteFile(t, filepath.Join(t.TempDir(), "ingest.jsonc"), `{
	"format": "csv",
	"csv_skip_leading_rows": 1,
	/* tolerate a few bad rows */
	"max_bad_records": 3,
}`)

	h.mustRun(t, "ingest", "table", "-s", "gs://bucket/rows.json", "-F", "json", "-f", options, "genomes", "sample")

	mutations := h.service.Mutations()
	if len(mutations) != 1 {
		t.Fatalf("mutations = %+v", mutations)
	}
	request := mutations[0].Request.(catalog.TableIngest)
	want := catalog.TableIngest{
		Table:              "sample",
		Path:               "gs://bucket/rows.json",
		Format:             "json",
		CSVSkipLeadingRows: 1,
		MaxBadRecords:      3,
	}
	if request != want {
		t.Errorf("request = %+v, want %+v", request, want)
	}
}

func TestIngestTableDefaultsAndValidation(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, "ingest", "table", "-s", "gs://bucket/rows.csv", "genomes", "donor")
	request := h.service.Mutations()[0].Request.(catalog.TableIngest)
	if request.Format != "csv" {
		t.Errorf("default format = %q, want csv", request.Format)
	}

	wantExit(t, h.run("ingest", "table", "-s", "x", "-F", "parquet", "genomes", "donor"), cli.ExitValidation)

	unknown := testutil.WriteFile(t, filepath.Join(t.TempDir(), "typo.json"), `{"max_bad_record": 3}`)
	wantExit(t, h.run("ingest", "table", "-s", "x", "-f", unknown, "genomes", "donor"), cli.ExitValidation)
	if got := len(h.service.Mutations()); got != 1 {
		t.Errorf("invalid ingests recorded mutations: %d total, want 1", got)
	}
}
