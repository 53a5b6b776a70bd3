/*
fees.go - Copy-fee estimation for records responses

PURPOSE:
  APRA lets an agency charge for copies (IC 5-14-3-8): a per-page rate for
  standard copies, commonly with a certification surcharge per document.
  Money math uses decimal.Decimal throughout - fee schedules are set by
  ordinance in exact cents and must not drift through floats.

SEE ALSO:
  - request.go: The lifecycle the estimate attaches to
*/
package workflow

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// FEE SCHEDULE
// =============================================================================

// FeeSchedule is one agency's copy-fee ordinance.
type FeeSchedule struct {
	// PerPage is the charge per copied page.
	PerPage decimal.Decimal

	// FreePages are waived at the start of each request.
	FreePages int

	// CertificationFee is a flat surcharge per certified document.
	CertificationFee decimal.Decimal
}

// StandardFeeSchedule returns the common statutory defaults: ten cents a
// page, no free pages, five dollars per certification.
func StandardFeeSchedule() FeeSchedule {
	return FeeSchedule{
		PerPage:          decimal.New(10, -2), // $0.10
		CertificationFee: decimal.New(5, 0),   // $5.00
	}
}

// FeeEstimate is the itemized charge for one response.
type FeeEstimate struct {
	Pages          int
	BillablePages  int
	CopyCharge     decimal.Decimal
	Certifications int
	CertCharge     decimal.Decimal
	Total          decimal.Decimal
}

// Estimate prices a response of pages copied and documents certified.
// Negative counts are rejected as caller input errors.
func (f FeeSchedule) Estimate(pages, certifications int) (FeeEstimate, error) {
	if pages < 0 || certifications < 0 {
		return FeeEstimate{}, ErrNegativePageCount
	}
	billable := pages - f.FreePages
	if billable < 0 {
		billable = 0
	}
	copyCharge := f.PerPage.Mul(decimal.NewFromInt(int64(billable)))
	certCharge := f.CertificationFee.Mul(decimal.NewFromInt(int64(certifications)))
	return FeeEstimate{
		Pages:          pages,
		BillablePages:  billable,
		CopyCharge:     copyCharge,
		Certifications: certifications,
		CertCharge:     certCharge,
		Total:          copyCharge.Add(certCharge),
	}, nil
}
