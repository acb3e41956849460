package chapters

import "specbook"

// revisionHistorySrc is the appendix authored in Markdown to exercise the
// same adapter the CLI uses for --appendix files.
const revisionHistorySrc = `# Appendix A — Revision History

This appendix records every published revision of this Specification.
Revisions take effect on their stated effective date; the **current**
revision is the one with the latest effective date not in the future.

| Revision | Effective | Summary |
| --- | --- | --- |
| 2.3 | 2026-03-01 | Third settlement cycle added; reason codes extended |
| 2.2 | 2025-09-15 | Message schema v2; deduplication window extended to 7 days |
| 2.1 | 2025-04-01 | Service credit mechanism introduced (Chapter 9) |
| 2.0 | 2024-11-03 | Full rewrite for the Meridian platform migration |

## Change Management

Revisions are published at least *30 days* before their effective date,
except corrections of manifest error, which may take effect immediately.

- Draft revisions circulate to the member committee for comment.
- Final revisions are published through the Reporting Hub.
- Superseded revisions remain available for seven years.
`

// RevisionHistory is the Markdown-authored appendix provider.
var RevisionHistory = specbook.MustMarkdown(revisionHistorySrc)
