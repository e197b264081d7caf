// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package resolver

// Static legal text printed on assembly notices.
const (
	quorumRules = "On first call the assembly may deliberate when members representing more than half " +
		"of the total value of the building are present or represented. If that quorum is not reached, " +
		"the assembly meets on second call and deliberates with the members present, provided they " +
		"represent at least one quarter of the total value of the building."

	legalReference = "Convened under articles 1431 and 1432 of the Civil Code. Members may be represented " +
		"by proxy through a signed letter addressed to the administrator."

	paymentFallback = "Please contact the building administration to arrange payment."
)
