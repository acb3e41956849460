package chapters

import "specbook"

// PartTechnical opens Part II.
func PartTechnical(b *specbook.Builder) specbook.Seq {
	return b.Seq(
		b.PartTitle("Part II — Technical Specification"),
	)
}

// Architecture describes the system decomposition and interface surfaces.
func Architecture(b *specbook.Builder) specbook.Seq {
	components := [][]string{
		{"Gateway", "Terminates Participant sessions, authenticates, enforces throttling", "Active/active, both sites"},
		{"Validator", "Schema, eligibility and limit checks on inbound Instructions", "Active/active, both sites"},
		{"Register", "System of record for obligations and Netting Sets", "Active/passive, synchronous replication"},
		{"Netting Engine", "Per-cycle netting and funding computation", "Active/passive, cycle-scoped"},
		{"Settlement Adapter", "Payment messaging to settlement banks", "Active/passive, per bank"},
		{"Reporting Hub", "Confirmations, statements and regulatory extracts", "Active/active, eventually consistent"},
	}

	return b.Seq(
		b.ChapterTitle("4. System Architecture"),

		b.SectionTitle("4.1 Components"),
		b.Para(
			specbook.Text("The Platform decomposes into six components. Components communicate over authenticated internal queues; no component other than the Gateway accepts external connections."),
		),
		b.Table([]string{"Component", "Responsibility", "Resilience"}, split(b, 0.2, 0.48, 0.32), components),

		b.SectionTitle("4.2 Data Flow"),
		b.Para(
			specbook.Text("An Instruction enters at the Gateway, is validated, and is registered before any acknowledgement is returned; a Participant that receives an acknowledgement may rely on the Instruction being in the Register. The Netting Engine reads the Register only at Cut-off, so intra-cycle amendments never require recomputation."),
		),
		b.Para(
			specbook.Text("All inter-component messages carry the originating Instruction identifier, enabling end-to-end tracing of any obligation from capture to settlement confirmation."),
		),

		b.SectionTitle("4.3 Environments"),
		b.Para(
			specbook.Text("The Operator maintains production, member-test and disaster-recovery environments. The member-test environment runs the production software release plus, during release windows, the release candidate; it is available to Participants as described in "),
			specbook.Bold("Chapter 8"),
			specbook.Text("."),
		),
	)
}

// MessageFormats specifies the wire formats with worked examples.
func MessageFormats(b *specbook.Builder) specbook.Seq {
	s := b.Seq(
		b.ChapterTitle("5. Message Formats"),

		b.SectionTitle("5.1 Envelope"),
		b.Para(
			specbook.Text("Every Instruction is a UTF-8 JSON document with a common envelope and a type-specific body. Field names are case-sensitive. Unknown envelope fields are rejected; unknown body fields are rejected unless the schema version in "),
			specbook.Mono("schema"),
			specbook.Text(" declares them optional."),
		),
	)

	s.Extend(b.Code("json", `{
  "schema": "meridian.instruction.v2",
  "messageId": "8f6f4a2e-01c4-4ed5-9f0e-b14d3a7c9a11",
  "sender": "MBRA",
  "sentAt": "2026-03-02T08:15:27Z",
  "type": "settlement.instruction",
  "body": { }
}`))

	s.Append(
		b.SectionTitle("5.2 Settlement Instruction"),
		b.Para(
			specbook.Text("The settlement instruction body identifies the obligation, the counterparty and the value date. Amounts are strings carrying fixed-point decimals; the Platform never transmits binary floating point."),
		),
	)

	s.Extend(b.Code("json", `{
  "tradeRef": "TR-2026-0302-000145",
  "counterparty": "MBRB",
  "currency": "EUR",
  "amount": "1250000.00",
  "valueDate": "2026-03-04",
  "direction": "PAY"
}`))

	s.Append(
		b.SectionTitle("5.3 Acknowledgements and Rejections"),
		b.Para(
			specbook.Text("The Gateway answers every Instruction with exactly one acknowledgement or rejection within the response-time targets of "),
			specbook.Bold("Chapter 7"),
			specbook.Text(". Rejections carry a machine-readable reason code and the envelope "),
			specbook.Mono("messageId"),
			specbook.Text(" of the offending Instruction:"),
		),
	)

	s.Extend(b.Code("json", `{
  "schema": "meridian.reject.v2",
  "inResponseTo": "8f6f4a2e-01c4-4ed5-9f0e-b14d3a7c9a11",
  "code": "LIMIT_BREACH",
  "detail": "net debit cap exceeded for netting set MBRA/EUR"
}`))

	s.Append(
		b.Para(
			specbook.Italic("Reason codes are enumerated in the data dictionary (Chapter 6); codes not listed there are reserved and never emitted."),
		),
	)
	return s
}

// DataDictionary enumerates shared field domains and reason codes.
func DataDictionary(b *specbook.Builder) specbook.Seq {
	fields := [][]string{
		{"messageId", "UUID v4", "Globally unique per Instruction; duplicates are rejected for 7 days"},
		{"sender", "4-char member code", "Assigned at admission; immutable"},
		{"currency", "ISO 4217 alpha-3", "Must be a settlement currency listed in the Operational Timetable"},
		{"amount", "decimal string", "Up to 18 integer digits, exactly 2 fraction digits, no sign"},
		{"valueDate", "ISO 8601 date", "Must be a Business Day within 30 calendar days of submission"},
		{"direction", "enum", "PAY or RECEIVE, from the sender's perspective"},
	}

	codes := [][]string{
		{"SCHEMA_INVALID", "Envelope or body failed schema validation", "No"},
		{"DUPLICATE", "messageId seen within the deduplication window", "No"},
		{"NOT_ELIGIBLE", "Sender not admitted for the instrument or currency", "No"},
		{"LIMIT_BREACH", "Net debit cap or position limit exceeded", "Yes, after limit headroom returns"},
		{"CUTOFF_PASSED", "Received after Cut-off for the stated value date", "Yes, next cycle"},
		{"SUSPENDED", "Sender or counterparty suspended under Chapter 10", "No"},
	}

	return b.Seq(
		b.ChapterTitle("6. Data Dictionary"),

		b.SectionTitle("6.1 Common Fields"),
		b.Table([]string{"Field", "Domain", "Constraints"}, split(b, 0.2, 0.24, 0.56), fields),

		b.SectionTitle("6.2 Rejection Reason Codes"),
		b.Table([]string{"Code", "Meaning", "Resubmittable"}, split(b, 0.24, 0.5, 0.26), codes),

		b.Spacer(),
		b.Para(
			specbook.Text("Domains marked as enumerations are closed: the Operator extends them only by operational circular with at least 30 days' notice, and schema versions are incremented so that Participants can reject unknown values deterministically."),
		),
	)
}
