package chapters

import "specbook"

// PartGeneral opens Part I.
func PartGeneral(b *specbook.Builder) specbook.Seq {
	return b.Seq(
		b.PartTitle("Part I — General Provisions"),
	)
}

// Scope covers applicability, interpretation rules and precedence.
func Scope(b *specbook.Builder) specbook.Seq {
	s := b.Seq(
		b.ChapterTitle("1. Scope and Interpretation"),

		b.SectionTitle("1.1 Applicability"),
		b.Para(
			specbook.Text("This Specification governs the provision of clearing, settlement and related post-trade services (the "),
			specbook.Bold("Services"),
			specbook.Text(") by Meridian Clearing Ltd. (the "),
			specbook.Bold("Operator"),
			specbook.Text(") to each admitted participant (each a "),
			specbook.Bold("Participant"),
			specbook.Text("). It applies to every transaction submitted to the Platform from the Effective Date, whether submitted directly or through an authorised agent."),
		),
		b.Para(
			specbook.Text("Nothing in this Specification creates rights in favour of any person other than the Operator and the Participants. The Services are provided exclusively on the terms set out here and in the Participation Agreement; no course of dealing, usage of trade or prior communication varies these terms."),
		),

		b.SectionTitle("1.2 Rules of Interpretation"),
	)

	rules := b.Seq(
		b.Bullet(specbook.Text("Headings are for convenience only and do not affect interpretation.")),
		b.Bullet(specbook.Text("References to a statute include that statute as amended, re-enacted or replaced.")),
		b.Bullet(specbook.Text("The singular includes the plural and vice versa; \"including\" means \"including without limitation\".")),
		b.Bullet(
			specbook.Text("Capitalised terms carry the meanings assigned in "),
			specbook.Bold("Chapter 2 (Definitions)"),
			specbook.Text("; terms defined nowhere in this Specification carry their ordinary market meaning."),
		),
		b.Bullet(specbook.Text("Times are stated in Coordinated Universal Time (UTC) unless expressly stated otherwise.")),
	)
	s.Extend(rules)

	s.Append(
		b.SectionTitle("1.3 Order of Precedence"),
		b.Para(
			specbook.Text("In the event of conflict, the following order of precedence applies: (a) mandatory law and regulation; (b) the Participation Agreement; (c) this Specification; (d) operational circulars issued under "),
			specbook.Bold("Chapter 8"),
			specbook.Text(". A conflict exists only where provisions cannot be read together; provisions that can reasonably be reconciled are read cumulatively."),
		),
	)
	return s
}

// Definitions is the defined-terms table plus construction notes.
func Definitions(b *specbook.Builder) specbook.Seq {
	terms := [][]string{
		{"Business Day", "Any day other than a Saturday, Sunday or published Platform holiday on which the settlement banks in the principal financial centre are open."},
		{"Clearing Member", "A Participant admitted under Chapter 3 to clear transactions for its own account or for clients."},
		{"Cut-off", "The time stated in the Operational Timetable after which instructions are carried to the next Settlement Cycle."},
		{"Default Fund", "The pooled resources maintained under Chapter 10 to absorb losses exceeding a defaulter's margin."},
		{"Instruction", "A message submitted to the Platform in a format specified in Chapter 5 requesting a clearing or settlement action."},
		{"Netting Set", "The set of obligations between the Operator and one Participant that are netted into a single obligation per currency and value date."},
		{"Platform", "The systems, interfaces and operational arrangements operated by the Operator to deliver the Services."},
		{"Settlement Cycle", "One complete execution of the netting, funding and settlement sequence described in Chapter 3."},
	}

	return b.Seq(
		b.ChapterTitle("2. Definitions"),
		b.Para(
			specbook.Text("The terms below are used throughout this Specification with the meanings given. Defined terms appear in "),
			specbook.Bold("bold"),
			specbook.Text(" at first use within each chapter."),
		),
		b.Table([]string{"Term", "Meaning"}, split(b, 0.25, 0.75), terms),
		b.Para(
			specbook.Italic("Terms defined inline in later chapters (for example message field names in Chapter 5) bind only within the chapter that defines them."),
		),
	)
}

// PlatformOverview describes the service at the business level.
func PlatformOverview(b *specbook.Builder) specbook.Seq {
	s := b.Seq(
		b.ChapterTitle("3. Platform Overview"),

		b.SectionTitle("3.1 Service Summary"),
		b.Para(
			specbook.Text("The Platform receives Instructions from Participants, validates them against the admission and risk rules in force, registers resulting obligations into Netting Sets, and discharges those obligations through scheduled Settlement Cycles. Each cycle nets obligations per Participant, currency and value date; nets are funded through designated settlement banks and confirmed back to Participants."),
		),

		b.SectionTitle("3.2 Settlement Cycle"),
		b.Para(specbook.Text("Each Business Day runs three Settlement Cycles. Every cycle passes through the same five phases, in order:")),
	)

	phases := b.Seq(
		b.Bullet(specbook.Bold("Capture. "), specbook.Text("Instructions received before Cut-off are locked into the cycle.")),
		b.Bullet(specbook.Bold("Validation. "), specbook.Text("Locked instructions are re-checked against limits, eligibility and position data as at Cut-off.")),
		b.Bullet(specbook.Bold("Netting. "), specbook.Text("Validated obligations are netted per Netting Set into one payable or receivable per currency.")),
		b.Bullet(specbook.Bold("Funding. "), specbook.Text("Net payers are debited at their settlement banks; funds are held at the Operator's concentration account.")),
		b.Bullet(specbook.Bold("Distribution. "), specbook.Text("Net receivers are credited and confirmations are issued to all affected Participants.")),
	)
	s.Extend(phases)

	s.Append(
		b.Spacer(),
		b.Para(
			specbook.Text("A cycle that cannot complete its Funding phase within the window in the Operational Timetable is escalated under "),
			specbook.Bold("Chapter 8"),
			specbook.Text(" and may be re-run with the defaulting Participant's obligations carved out."),
		),

		b.SectionTitle("3.3 Participation Model"),
		b.Para(
			specbook.Text("Participation is tiered. Clearing Members face the Operator directly and contribute to the Default Fund; sponsored participants access the Platform through a Clearing Member that remains liable for their obligations. Admission criteria, ongoing requirements and termination events are set out in the Participation Agreement and are not restated here."),
		),
	)
	return s
}
