package extract

// Prompt templates are pure data. Each dictates an exact output JSON shape;
// the normalizer round-trips the worked examples shown here.

// TimesheetPrompt returns the extraction prompt for timesheets and manning
// sheets. Supplied plain-text content is embedded verbatim as extra context.
func TimesheetPrompt(textContent string) string {
	prompt := `You are a document data extraction assistant for longshore work records. Analyze the provided timesheet or manning sheet and extract every worked shift.

Return ONLY a valid JSON array with no markdown formatting, no code fences, no explanation. Each element must follow this shape:

[
  {
    "date": "2024-01-15",
    "shift_type": "day",
    "hours": 8,
    "job_name": "Hold Foreman",
    "earnings": 425.50,
    "location": "Berth 4",
    "ship": "Ever Given"
  }
]

Rules:
- "date" is the calendar date of the shift in YYYY-MM-DD format when possible.
- "shift_type" is one of "day", "afternoon", "graveyard". If the sheet only shows a start time or a shift label, copy the label as written.
- "hours" is the number of hours worked that shift.
- "job_name" is the job or position as printed. Use an empty string if not shown.
- "earnings", "location" and "ship" are optional; omit them or use null when not present.
- Include one element per shift row. Do not invent rows.`

	if textContent != "" {
		prompt += "\n\nAdditional context from the document:\n" + textContent
	}
	return prompt
}

// PaystubPrompt returns the extraction prompt for longshore paystubs.
func PaystubPrompt() string {
	return `You are a document data extraction assistant for longshore paystubs. Analyze the provided paystub and extract the current pay period's values.

IMPORTANT INSTRUCTIONS:
- Dates in the earnings table use a 5-digit YMMDD encoding where Y is the last digit of the year. Decode them into YYYY-MM-DD assuming the current decade (for example 40115 means 2024-01-15).
- Report ONLY current-period values. Exclude all year-to-date (YTD) columns and aggregates.
- Emit one line item per row of the earnings table.
- Use null for any value not found in the document.

Return ONLY a valid JSON object with no markdown formatting, no code fences, no explanation, following this shape:

{
  "line_items": [
    {"date": "2024-01-15", "type": "regular", "rate": 54.27, "hours": 8, "amount": 434.16},
    {"date": "2024-01-16", "type": "overtime", "rate": 81.40, "hours": 4, "amount": 325.60}
  ],
  "gross_pay": 759.76,
  "net_pay": 540.12,
  "total_hours": 12,
  "federal_tax": 98.40,
  "provincial_tax": 45.20,
  "cpp": 41.30,
  "ei": 12.54,
  "union_dues": 22.20,
  "other_deductions": null,
  "pay_period_start": "2024-01-14",
  "pay_period_end": "2024-01-20"
}

"type" is "regular" or "overtime".`
}

// StatSchedulePrompt returns the extraction prompt for statutory-holiday
// schedule notices.
func StatSchedulePrompt() string {
	return `You are a document data extraction assistant. Determine whether the provided image is a statutory holiday schedule listing holidays with qualification periods.

If it is NOT a statutory holiday schedule, return exactly: {"error": "not_stat_schedule"}

Otherwise return ONLY a valid JSON object with no markdown formatting, no code fences, no explanation, following this shape:

{
  "year": 2026,
  "holidays": [
    {
      "name": "Canada Day",
      "date": "2026-07-01",
      "qualification_start": "2026-05-04",
      "qualification_end": "2026-06-02",
      "pay_date": "2026-07-09"
    }
  ]
}

Rules:
- All dates in YYYY-MM-DD format.
- "qualification_start" and "qualification_end" are the qualification period determining holiday pay eligibility.
- "pay_date" is optional; omit it or use null when the schedule does not show one.
- Include every holiday listed.`
}

// ProbePrompt returns the trivial prompt used for connectivity checks.
func ProbePrompt() string {
	return "Reply with just the word OK."
}
