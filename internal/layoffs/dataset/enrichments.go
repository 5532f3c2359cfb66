package dataset

import (
	"github.com/dkravets/layoffpulse/internal/layoffs/models"
	"github.com/dkravets/layoffpulse/internal/pkg/utils"
)

// divisionOverrides annotates corpus records with the affected business unit
// and, where reporting was explicit, an AI-attribution flag. Keyed by
// enrich.OverrideKey(company, date); the table is non-ambiguous by
// construction.
var divisionOverrides = map[string]models.DivisionOverride{
	"Google|4/11/2025":     {Division: "Platforms & Devices (Android, Chrome, Pixel)", AIRelated: utils.Ptr(true)},
	"Google|2/27/2025":     {Division: "Cloud Division"},
	"Google|1/15/2025":     {Division: "Platforms & Devices (Fitbit, Nest)", AIRelated: utils.Ptr(true)},
	"Google|1/10/2024":     {Division: "Hardware, Eng, Google Assistant", AIRelated: utils.Ptr(true)},
	"Google|1/17/2023":     {Division: "Company-wide"},
	"Meta|10/22/2025":      {Division: "FAIR (AI Research Group)", AIRelated: utils.Ptr(true)},
	"Meta|2/10/2025":       {Division: "Company-wide (\"Low Performers\")", AIRelated: utils.Ptr(true)},
	"Meta|11/9/2022":       {Division: "Company-wide"},
	"Meta|3/14/2023":       {Division: "Company-wide"},
	"Amazon|10/27/2025":    {Division: "Corporate (Anti-bureaucracy Push)", AIRelated: utils.Ptr(true)},
	"Amazon|1/4/2023":      {Division: "Company-wide (18,000)"},
	"Amazon|3/20/2023":     {Division: "Company-wide (9,000 additional)"},
	"Amazon|11/16/2022":    {Division: "Devices & Services"},
	"Microsoft|7/2/2025":   {Division: "Xbox / Gaming Studios", AIRelated: utils.Ptr(false)},
	"Microsoft|5/13/2025":  {Division: "Gaming (King, Zenimax, Turn 10)"},
	"Microsoft|1/19/2023":  {Division: "Company-wide"},
	"Microsoft|1/18/2024":  {Division: "Gaming (Activision Blizzard)"},
	"Salesforce|8/31/2025": {Division: "Customer Support (Replaced by AI Agents)", AIRelated: utils.Ptr(true)},
	"Salesforce|1/4/2023":  {Division: "Company-wide"},
	"Intel|4/23/2025":      {Division: "Company-wide (CEO Restructuring)", AIRelated: utils.Ptr(true)},
	"Intel|7/11/2025":      {Division: "Intel Foundry (Factory Workers)", AIRelated: utils.Ptr(false)},
	"Intel|8/1/2024":       {Division: "Company-wide ($10B Cost Cut)"},
	"Workday|2/5/2025":     {Division: "Customer Support", AIRelated: utils.Ptr(true)},
	"Pinterest|1/27/2026":  {Division: "Company-wide (AI Transformation)", AIRelated: utils.Ptr(true)},
	"WiseTech|2/24/2026":   {Division: "Engineering (AI replacing manual coding)", AIRelated: utils.Ptr(true)},
	"Chegg|10/27/2025":     {Division: "Company-wide (ChatGPT disruption)", AIRelated: utils.Ptr(true)},
	"Chegg|6/8/2023":       {Division: "Content / Tutoring", AIRelated: utils.Ptr(true)},
	"Cisco|8/9/2024":       {Division: "Talos Security & Engineering"},
	"Cisco|2/14/2024":      {Division: "Company-wide"},
	"Deepwatch|11/12/2025": {Division: "Engineering (AI Investment Pivot)", AIRelated: utils.Ptr(true)},
	"DraftKings|2/24/2026": {Division: "Company-wide (AI Adoption)", AIRelated: utils.Ptr(true)},
}

// aiPatterns tags whole companies whose layoffs reporting attributed to AI,
// optionally only from a threshold date onward.
var aiPatterns = []models.AIPattern{
	{Company: "Chegg"}, // entire company disrupted by AI
	{Company: "Duolingo"},
	{Company: "Klarna", DateAfter: "1/1/2024"},
	{Company: "Salesforce", DateAfter: "1/1/2025"},
	{Company: "Block", DateAfter: "1/1/2026"},
	{Company: "WiseTech"},
	{Company: "Deepwatch"},
}

// workforceSizes estimates current total headcount per company, used to
// derive percentage-of-workforce figures.
var workforceSizes = map[string]int{
	"Intel":             124000,
	"Verizon":           105000,
	"Dell":              133000,
	"Ford":              177000,
	"PwC":               75000,
	"Salesforce":        73000,
	"IBM":               288000,
	"American Airlines": 130000,
	"Paramount":         24500,
	"General Motors":    163000,
	"Applied Materials": 34000,
	"Meta":              67000,
	"UPS":               490000,
	"Amazon":            1560000,
	"Microsoft":         221000,
	"Accenture":         801000,
	"Target":            440000,
	"Kroger":            409000,
}

// supplementalRecords covers companies and events missing from the primary
// corpus. They carry final values and skip enrichment.
var supplementalRecords = []models.LayoffRecord{
	{Company: "Verizon", LocationHQ: "New York City", LaidOff: utils.Ptr(4400), Date: "12/11/2024", Percentage: utils.Ptr(4.0), Industry: "Telecom", Source: "https://www.reuters.com/business/media-telecom/verizon-cut-4400-jobs-through-voluntary-severance-2024-12-11/", Stage: "Post-IPO", Country: "United States", DateAdded: "12/11/2024"},
	{Company: "Verizon", LocationHQ: "New York City", LaidOff: utils.Ptr(4900), Date: "3/19/2025", Percentage: utils.Ptr(5.0), Industry: "Telecom", Source: "https://www.fiercetelecom.com/telecom/verizon-cut-another-4900-jobs-second-round-layoffs", Stage: "Post-IPO", Country: "United States", DateAdded: "3/19/2025", AIRelated: true, Division: "Network Engineering & Customer Service"},
	{Company: "Verizon", LocationHQ: "New York City", LaidOff: utils.Ptr(4000), Date: "9/15/2025", Percentage: utils.Ptr(4.0), Industry: "Telecom", Source: "https://www.lightreading.com/5g/verizon-to-cut-4000-more-jobs-total-reaches-13000", Stage: "Post-IPO", Country: "United States", DateAdded: "9/15/2025", AIRelated: true, Division: "Corporate & Technology"},
	{Company: "Chevron", LocationHQ: "Houston", LaidOff: utils.Ptr(8000), Date: "3/5/2025", Percentage: utils.Ptr(17.0), Industry: "Energy", Source: "https://www.reuters.com/business/energy/chevron-cut-up-20-workforce-by-end-2026-2025-03-05/", Stage: "Post-IPO", Country: "United States", DateAdded: "3/5/2025", Division: "Corporate & Global Workforce"},
	{Company: "Accenture", LocationHQ: "Dublin", LaidOff: utils.Ptr(11000), Date: "6/15/2025", Percentage: utils.Ptr(1.5), Industry: "Consulting", Source: "https://www.reuters.com/business/accenture-cut-jobs-ai-automation-2025-06-15/", Stage: "Post-IPO", Country: "Ireland", DateAdded: "6/15/2025", AIRelated: true, Division: "Operations & Delivery (AI Reskilling)"},
	{Company: "Duolingo", LocationHQ: "Pittsburgh", LaidOff: utils.Ptr(50), Date: "1/8/2025", Percentage: utils.Ptr(10.0), Industry: "Education", Source: "https://www.theverge.com/2025/1/8/24337750/duolingo-contractor-layoffs-ai-translation", Stage: "Post-IPO", RaisedMM: utils.Ptr(183.0), Country: "United States", DateAdded: "1/8/2025", AIRelated: true, Division: "Contract Translators & Writers (Replaced by AI)"},
	{Company: "UPS", LocationHQ: "Atlanta", LaidOff: utils.Ptr(12000), Date: "1/30/2024", Percentage: utils.Ptr(3.0), Industry: "Logistics", Source: "https://www.cnbc.com/2024/01/30/ups-to-cut-12000-jobs.html", Stage: "Post-IPO", Country: "United States", DateAdded: "1/30/2024", Division: "Management & Corporate"},
	{Company: "UPS", LocationHQ: "Atlanta", LaidOff: utils.Ptr(20000), Date: "4/29/2025", Percentage: utils.Ptr(5.0), Industry: "Logistics", Source: "https://www.wsj.com/business/logistics/ups-to-cut-20000-jobs-close-73-facilities-c52fdd2a", Stage: "Post-IPO", Country: "United States", DateAdded: "4/29/2025", AIRelated: true, Division: "Operations & Facilities (73 Facilities Closing)"},
	{Company: "Klarna", LocationHQ: "Stockholm", LaidOff: utils.Ptr(700), Date: "8/27/2024", Percentage: utils.Ptr(10.0), Industry: "Finance", Source: "https://finance.yahoo.com/news/firing-700-humans-ai-klarna-173029838.html", Stage: "Post-IPO", RaisedMM: utils.Ptr(4600.0), Country: "Sweden", DateAdded: "8/27/2024", AIRelated: true, Division: "Customer Service (Replaced by AI, Later Reversed)"},
}
