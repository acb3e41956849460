package chapters

import "specbook"

// PartLegal opens Part IV.
func PartLegal(b *specbook.Builder) specbook.Seq {
	return b.Seq(
		b.PartTitle("Part IV — Legal Terms"),
	)
}

// Liability allocates risk between the Operator and Participants.
func Liability(b *specbook.Builder) specbook.Seq {
	s := b.Seq(
		b.ChapterTitle("10. Liability and Default"),

		b.SectionTitle("10.1 Limitation of Liability"),
		b.Para(
			specbook.Text("The Operator's aggregate liability to any Participant for all claims arising in a calendar year, however arising, is capped at the fees paid by that Participant in that year. The Operator is not liable for indirect or consequential loss, loss of profit, or loss arising from a Participant's reliance on data it knew or should have known to be provisional."),
		),
		b.Para(
			specbook.Text("Nothing in this chapter excludes liability for fraud, for death or personal injury caused by negligence, or for any liability that cannot lawfully be excluded."),
		),

		b.SectionTitle("10.2 Default Management"),
		b.Para(
			specbook.Text("On a Participant's default the Operator may suspend the defaulter, carve its obligations out of the current Settlement Cycle, close out its positions and apply resources in the following order:"),
		),
	)

	waterfall := b.Seq(
		b.Bullet(specbook.Text("the defaulter's margin and other collateral;")),
		b.Bullet(specbook.Text("the defaulter's contribution to the Default Fund;")),
		b.Bullet(specbook.Text("the Operator's dedicated own resources;")),
		b.Bullet(specbook.Text("the non-defaulting Participants' Default Fund contributions, pro rata.")),
	)
	s.Extend(waterfall)

	s.Append(
		b.Spacer(),
		b.Para(
			specbook.Text("Default Fund contributions consumed under this waterfall are replenished by the surviving Participants within five Business Days of written demand, subject to the per-event cap in the Participation Agreement."),
		),
	)
	return s
}

// Confidentiality governs information handling and disclosure.
func Confidentiality(b *specbook.Builder) specbook.Seq {
	return b.Seq(
		b.ChapterTitle("11. Confidentiality"),

		b.SectionTitle("11.1 Obligations"),
		b.Para(
			specbook.Text("Each party keeps confidential all non-public information received from the other in connection with the Services, uses it solely to perform or receive the Services, and protects it with no less care than it applies to its own confidential information of similar sensitivity."),
		),

		b.SectionTitle("11.2 Permitted Disclosures"),
		b.Para(
			specbook.Text("A party may disclose confidential information: (a) to its affiliates, advisers and auditors under equivalent duties of confidence; (b) to a regulator or court where required by law, giving prior notice where lawful; (c) to settlement banks and infrastructure providers to the extent necessary to effect settlement; and (d) in aggregated or anonymised form that does not identify any Participant or its positions."),
		),

		b.SectionTitle("11.3 Duration"),
		b.Para(
			specbook.Text("These obligations survive termination of participation for five years, and indefinitely for information identified as a trade secret at the time of disclosure. On termination each party returns or destroys the other's confidential information on request, save for copies retained under a documented legal or regulatory obligation."),
		),
	)
}
