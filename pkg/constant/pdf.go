// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package constant

import "time"

// PDF Generation Constants
const (
	PDFMinValidSizeBytes     = 1000
	PDFRenderSettleDelay     = 500 * time.Millisecond
	PDFPaperWidthInches      = 8.27
	PDFPaperHeightInches     = 11.69
	PDFMarginInches          = 0.6
	PDFChromeMaxOldSpaceSize = "512"
	PDFContentType           = "application/pdf"
	PDFObjectPrefix          = "documents"
	PDFBytesPerKB            = 1024.0
	PDFLargeHTMLThreshold    = 512 * 1024
	PDFFilePermissions       = 0o600
	PDFDefaultWorkers        = 2
	PDFDefaultTimeout        = 90 * time.Second
	PDFPresignExpiry         = 15 * time.Minute
)
