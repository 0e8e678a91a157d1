package services

import (
	"fmt"

	"github.com/custodia-labs/scopegen/internal/core/domain"
)

// Section headings and placeholders used in the agreement.
const (
	HeadingGeneralServices   = "General Services"
	HeadingEquipmentServices = "Equipment-Specific Services"
	HeadingPreferredClient   = "Preferred Client Status:"
	HeadingAgreementTerm     = "Agreement Term:"
	HeadingBilling           = "Billing & Payment:"

	PlaceholderStartDate = "[Start Date]"
	PlaceholderEndDate   = "[End Date]"
)

const introTemplate = "This Preventive Maintenance Program includes %s. " +
	"All maintenance and inspection work will be conducted during regular business hours (M–F, 8:00 AM to 5:00 PM). " +
	"A written report of findings, corrective actions, and recommendations will follow each visit. " +
	"Corrective actions not covered under this agreement will be quoted for approval prior to performance."

const preferredClientText = "Upon acceptance of this agreement, the customer will be recognized as a Preferred Client. " +
	"Benefits include:\n" +
	"•\tDiscounted service labor rates: $145.00 per hour during regular business hours (M–F, 8:00 AM – 5:00 PM) " +
	"and $217.50 per hour for after-hours, weekends, or holidays.\n" +
	"•\tPriority scheduling for emergency service requests.\n" +
	"•\tReduced rates for repair parts, components, regulated material recovery, and disposal services.\n" +
	"•\tWritten service tickets provided after each inspection or repair."

const termTemplate = "This Service Agreement will commence on %s and continue through %s, " +
	"unless terminated or renewed in accordance with contract terms."

const billingTemplate = "%s\n\n" +
	"Each invoice will reflect %s, plus applicable taxes.\n\n" +
	"Additional services, repairs, or emergency calls outside the scope of this agreement " +
	"will be billed separately at Preferred Client rates."

// AssembleOptions controls presentation details of the assembled document.
type AssembleOptions struct {
	Title    string
	FontName string
	FontSize float64
}

// AgreementDates returns the start and end dates, substituting the
// placeholders for missing or blank values.
func AgreementDates(agreement domain.AgreementMetadata) (start, end string) {
	start, ok := agreement.Lookup(domain.FieldStartDate)
	if !ok {
		start = PlaceholderStartDate
	}
	end, ok = agreement.Lookup(domain.FieldEndDate)
	if !ok {
		end = PlaceholderEndDate
	}
	return start, end
}

// Assemble composes the agreement blocks in their fixed order: intro,
// general services, equipment-specific services (only when any were
// selected), preferred client status, agreement term, billing.
func Assemble(agreement domain.AgreementMetadata, sel domain.ScopeSelection, opts AssembleOptions) *domain.Document {
	freq := domain.ParseFrequency(agreement.Frequency())
	start, end := AgreementDates(agreement)

	doc := &domain.Document{
		Title:    opts.Title,
		FontName: opts.FontName,
		FontSize: opts.FontSize,
	}
	if doc.FontName == "" {
		doc.FontName = domain.DefaultFontName
	}
	if doc.FontSize <= 0 {
		doc.FontSize = domain.DefaultFontSize
	}

	doc.Paragraph(fmt.Sprintf(introTemplate, freq.Visits()))
	doc.Spacer()

	doc.Heading(HeadingGeneralServices)
	for _, line := range NumberClauses(sel.General) {
		doc.Paragraph(line)
	}

	if len(sel.Equipment) > 0 {
		doc.Spacer()
		doc.Heading(HeadingEquipmentServices)
		for _, s := range sel.Equipment {
			doc.Paragraph(s.Header)
			doc.Paragraph(s.Annual)
			doc.Paragraph(s.Quarterly)
		}
	}

	doc.Spacer()
	doc.Heading(HeadingPreferredClient)
	doc.Spacer()
	doc.Paragraph(preferredClientText)

	doc.Spacer()
	doc.Heading(HeadingAgreementTerm)
	doc.Spacer()
	doc.Paragraph(fmt.Sprintf(termTemplate, start, end))

	doc.Spacer()
	doc.Heading(HeadingBilling)
	doc.Spacer()
	doc.Paragraph(fmt.Sprintf(billingTemplate, freq.Billing(), freq.Fraction()))

	return doc
}
