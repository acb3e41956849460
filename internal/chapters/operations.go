package chapters

import "specbook"

// PartOperations opens Part III.
func PartOperations(b *specbook.Builder) specbook.Seq {
	return b.Seq(
		b.PartTitle("Part III — Operations"),
	)
}

// ServiceLevels sets availability and response-time commitments.
func ServiceLevels(b *specbook.Builder) specbook.Seq {
	targets := [][]string{
		{"Platform availability", "99.7% per calendar month", "Scheduled maintenance windows excluded"},
		{"Instruction acknowledgement", "95th percentile within 2 seconds", "Measured at the Gateway"},
		{"Cycle completion", "Within the Operational Timetable window", "Per cycle, per Business Day"},
		{"Confirmation delivery", "Within 15 minutes of cycle completion", "To all affected Participants"},
		{"Incident notification", "Within 30 minutes of classification", "Severity 1 and 2 incidents"},
	}

	return b.Seq(
		b.ChapterTitle("7. Service Levels"),

		b.SectionTitle("7.1 Commitments"),
		b.Para(
			specbook.Text("The Operator commits to the service levels below. Measurement methodology, exclusions and reporting cadence are set out in the remainder of this chapter; remedies for missed levels are set out in "),
			specbook.Bold("Chapter 9"),
			specbook.Text("."),
		),
		b.Table([]string{"Measure", "Target", "Notes"}, split(b, 0.3, 0.38, 0.32), targets),

		b.SectionTitle("7.2 Measurement and Exclusions"),
		b.Para(
			specbook.Text("Availability is measured from the Gateway's external interface using the Operator's independent monitoring points. Periods are excluded from measurement only where the interruption results from (a) scheduled maintenance notified at least five Business Days in advance, (b) a Participant's own systems or connectivity, or (c) a force majeure event under the Participation Agreement."),
		),
		b.Para(
			specbook.Text("Service level attainment is reported monthly, in arrears, through the Reporting Hub. A Participant disputing a reported figure must do so within 20 Business Days of publication."),
		),
	)
}

// OperationsSupport covers the operating day, support tiers and incidents.
func OperationsSupport(b *specbook.Builder) specbook.Seq {
	s := b.Seq(
		b.ChapterTitle("8. Operations and Support"),

		b.SectionTitle("8.1 Operating Day"),
		b.Para(
			specbook.Text("The Platform operating day opens at 06:00 and closes at 20:00 on each Business Day. Cut-offs for the three Settlement Cycles are published in the Operational Timetable, which the Operator may amend by circular with no less than ten Business Days' notice except in an emergency."),
		),

		b.SectionTitle("8.2 Support Tiers"),
	)

	tiers := b.Seq(
		b.Bullet(specbook.Bold("Service Desk. "), specbook.Text("First contact for all operational queries; staffed throughout the operating day.")),
		b.Bullet(specbook.Bold("Operations. "), specbook.Text("Cycle management, exception handling and manual intervention under dual control.")),
		b.Bullet(specbook.Bold("Engineering. "), specbook.Text("Escalation path for defects; engaged by Operations, never directly by Participants.")),
	)
	s.Extend(tiers)

	s.Append(
		b.SectionTitle("8.3 Incident Management"),
		b.Para(
			specbook.Text("Incidents are classified on detection: Severity 1 (Service unavailable or settlement at risk), Severity 2 (material degradation with workaround), Severity 3 (all other defects). Severity 1 incidents invoke the incident bridge and half-hourly Participant updates until resolution; a written post-incident report follows within five Business Days."),
		),
		b.Para(
			specbook.Text("Operational circulars — including timetable changes, emergency procedures and incident reports — are published through the Reporting Hub and take effect as stated in each circular."),
		),
	)
	return s
}

// Fees sets the charging structure.
func Fees(b *specbook.Builder) specbook.Seq {
	schedule := [][]string{
		{"Admission", "One-off on admission", "25,000"},
		{"Monthly participation", "Per Clearing Member per month", "4,500"},
		{"Instruction processing", "Per validated Instruction", "0.085"},
		{"Settlement", "Per net obligation settled", "1.20"},
		{"Member-test usage", "Per calendar month of access", "750"},
	}

	return b.Seq(
		b.ChapterTitle("9. Fees"),

		b.SectionTitle("9.1 Fee Schedule"),
		b.Para(
			specbook.Text("Fees are stated in euro, exclusive of applicable taxes, and are invoiced monthly in arrears. The Operator may revise the schedule with 60 days' notice; revisions never apply retrospectively."),
		),
		b.Table([]string{"Fee", "Basis", "Amount (EUR)"}, split(b, 0.34, 0.42, 0.24), schedule),

		b.SectionTitle("9.2 Service Credits"),
		b.Para(
			specbook.Text("Where a monthly availability target in "),
			specbook.Bold("Chapter 7"),
			specbook.Text(" is missed, each affected Clearing Member receives a credit of 5% of its monthly participation fee per full 0.1 percentage point of shortfall, capped at 50% of that fee. Service credits are the sole financial remedy for missed service levels and are set off against the next invoice."),
		),
	)
}
