// Copyright 2023 The Chromium Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package licenses

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"sort"

	spdx_common "github.com/spdx/tools-golang/spdx/common"
	spdx "github.com/spdx/tools-golang/spdx/v2_2"
)

const spdxPackageName = "FFmpeg"

// WriteSPDX writes an SPDX 2.2 JSON document listing every file in the
// license closure with its detected license. The report is informational:
// it never gates generation.
func WriteSPDX(path, sourceRoot string, verdicts []Verdict) error {
	sorted := append([]Verdict(nil), verdicts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	pkg := &spdx.Package{
		PackageName:             spdxPackageName,
		PackageSPDXIdentifier:   "Package-FFmpeg",
		PackageDownloadLocation: "NOASSERTION",
		PackageLicenseConcluded: "NOASSERTION",
		PackageLicenseDeclared:  "NOASSERTION",
		PackageCopyrightText:    "NOASSERTION",
		FilesAnalyzed:           true,
	}

	doc := &spdx.Document{
		SPDXVersion:       "SPDX-2.2",
		DataLicense:       "CC0-1.0",
		SPDXIdentifier:    "SPDXRef-DOCUMENT",
		DocumentName:      spdxPackageName,
		DocumentNamespace: "https://chromium.googlesource.com/chromium/third_party/ffmpeg",
		Packages:          []*spdx.Package{pkg},
		CreationInfo: &spdx.CreationInfo{
			Creators: []spdx_common.Creator{
				{
					Creator:     "gensources",
					CreatorType: "Tool",
				},
			},
		},
	}

	// Every SPDX doc must have one "DESCRIBES" relationship.
	doc.Relationships = append(doc.Relationships, &spdx.Relationship{
		RefA:         spdx_common.DocElementID{ElementRefID: doc.SPDXIdentifier},
		RefB:         spdx_common.DocElementID{ElementRefID: pkg.PackageSPDXIdentifier},
		Relationship: "DESCRIBES",
	})

	for _, v := range sorted {
		rel := v.Path
		if r, err := filepath.Rel(sourceRoot, v.Path); err == nil {
			rel = filepath.ToSlash(r)
		}

		h := fnv.New128a()
		h.Write([]byte(rel))
		f := &spdx.File{
			FileName:           rel,
			FileSPDXIdentifier: spdx_common.ElementID(fmt.Sprintf("File-%x", h.Sum(nil))),
			LicenseConcluded:   v.License,
			LicenseInfoInFiles: []string{v.License},
			FileCopyrightText:  "NOASSERTION",
		}
		doc.Files = append(doc.Files, f)
		pkg.Files = append(pkg.Files, f)
	}

	buf, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal SPDX document: %w", err)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("failed to write SPDX document %s: %w", path, err)
	}
	return nil
}
