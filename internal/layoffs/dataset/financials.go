package dataset

import (
	"github.com/dkravets/layoffpulse/internal/layoffs/models"
	"github.com/dkravets/layoffpulse/internal/pkg/utils"
)

// financials covers ~23 major companies. Sources: Bullfincher.io,
// MacroTrends, public filings (TTM or FY2025). RevenuePerEmployee is
// pre-computed as revenueMillions * 1_000_000 / employeeCount.
var financials = []models.CompanyFinancials{
	{Company: "NVIDIA", Sector: "Semiconductors", RevenueMillions: 130497, EmployeeCount: 36000, RevenuePerEmployee: 3624917},
	{Company: "Apple", Sector: "Big Tech", RevenueMillions: 391035, EmployeeCount: 161000, RevenuePerEmployee: 2428168},
	{Company: "Meta", Sector: "Big Tech", RevenueMillions: 164710, EmployeeCount: 72404, RevenuePerEmployee: 2274821},
	{Company: "Alphabet", Sector: "Big Tech", RevenueMillions: 350018, EmployeeCount: 183323, RevenuePerEmployee: 1909367},
	{Company: "Microsoft", Sector: "Big Tech", RevenueMillions: 254190, EmployeeCount: 228000, RevenuePerEmployee: 1114868},
	{Company: "Amazon", Sector: "Big Tech", RevenueMillions: 637997, EmployeeCount: 1568000, RevenuePerEmployee: 406885},
	{Company: "Broadcom", Sector: "Semiconductors", RevenueMillions: 51574, EmployeeCount: 20000, RevenuePerEmployee: 2578700},
	{Company: "AMD", Sector: "Semiconductors", RevenueMillions: 25785, EmployeeCount: 26000, RevenuePerEmployee: 991731},
	{Company: "Intel", Sector: "Semiconductors", RevenueMillions: 54228, EmployeeCount: 108900, RevenuePerEmployee: 498052},
	{Company: "Qualcomm", Sector: "Semiconductors", RevenueMillions: 41816, EmployeeCount: 51000, RevenuePerEmployee: 819922},
	{Company: "Palo Alto Networks", Sector: "Cybersecurity", RevenueMillions: 8155, EmployeeCount: 16200, RevenuePerEmployee: 503395},
	{Company: "CrowdStrike", Sector: "Cybersecurity", RevenueMillions: 3954, EmployeeCount: 10680, RevenuePerEmployee: 370225},
	{Company: "Fortinet", Sector: "Cybersecurity", RevenueMillions: 5960, EmployeeCount: 13800, RevenuePerEmployee: 431884},
	{Company: "Palantir", Sector: "Defense & AI", RevenueMillions: 2870, EmployeeCount: 3938, RevenuePerEmployee: 728796},
	{Company: "Lockheed Martin", Sector: "Defense & AI", RevenueMillions: 71040, EmployeeCount: 122000, RevenuePerEmployee: 582295},
	{Company: "Salesforce", Sector: "SaaS", RevenueMillions: 37884, EmployeeCount: 72682, RevenuePerEmployee: 521267},
	{Company: "ServiceNow", Sector: "SaaS", RevenueMillions: 10984, EmployeeCount: 24762, RevenuePerEmployee: 443519},
	{Company: "Workday", Sector: "SaaS", RevenueMillions: 8446, EmployeeCount: 18800, RevenuePerEmployee: 449255},
	{Company: "UnitedHealth", Sector: "Healthcare", RevenueMillions: 400278, EmployeeCount: 440000, RevenuePerEmployee: 909723},
	{Company: "Anthropic", Sector: "AI-Native", RevenueMillions: 2000, EmployeeCount: 1200, RevenuePerEmployee: 1666667},
	{Company: "OpenAI", Sector: "AI-Native", RevenueMillions: 5000, EmployeeCount: 3400, RevenuePerEmployee: 1470588},
	{Company: "UPS", Sector: "Logistics", RevenueMillions: 89050, EmployeeCount: 490000, RevenuePerEmployee: 181735},
	{Company: "Cisco", Sector: "Networking", RevenueMillions: 53800, EmployeeCount: 90400, RevenuePerEmployee: 595133},
}

// headcountHistories tracks year-end headcount for companies with the
// largest swings. YoY percentages come precomputed where published; FillYoY
// derives the rest.
var headcountHistories = []models.CompanyHistory{
	{Company: "Meta", Sector: "Big Tech", Headcount: []models.HeadcountYear{
		{Year: 2020, Count: 58604},
		{Year: 2021, Count: 71970, YoYChangePercent: utils.Ptr(22.8)},
		{Year: 2022, Count: 86482, YoYChangePercent: utils.Ptr(20.2)},
		{Year: 2023, Count: 67317, YoYChangePercent: utils.Ptr(-22.2)},
		{Year: 2024, Count: 74067, YoYChangePercent: utils.Ptr(10.0)},
	}},
	{Company: "Amazon", Sector: "Big Tech", Headcount: []models.HeadcountYear{
		{Year: 2020, Count: 1298000},
		{Year: 2021, Count: 1608000, YoYChangePercent: utils.Ptr(23.9)},
		{Year: 2022, Count: 1541000, YoYChangePercent: utils.Ptr(-4.2)},
		{Year: 2023, Count: 1525000, YoYChangePercent: utils.Ptr(-1.0)},
		{Year: 2024, Count: 1556000, YoYChangePercent: utils.Ptr(2.0)},
	}},
	{Company: "Intel", Sector: "Semiconductors", Headcount: []models.HeadcountYear{
		{Year: 2020, Count: 110600},
		{Year: 2021, Count: 121100, YoYChangePercent: utils.Ptr(9.5)},
		{Year: 2022, Count: 131900, YoYChangePercent: utils.Ptr(8.9)},
		{Year: 2023, Count: 124800, YoYChangePercent: utils.Ptr(-5.4)},
		{Year: 2024, Count: 108900, YoYChangePercent: utils.Ptr(-12.7)},
	}},
	{Company: "Microsoft", Sector: "Big Tech", Headcount: []models.HeadcountYear{
		{Year: 2020, Count: 163000},
		{Year: 2021, Count: 181000},
		{Year: 2022, Count: 221000},
		{Year: 2023, Count: 221000},
		{Year: 2024, Count: 228000},
	}},
	{Company: "Salesforce", Sector: "SaaS", Headcount: []models.HeadcountYear{
		{Year: 2020, Count: 49000},
		{Year: 2021, Count: 56606},
		{Year: 2022, Count: 73541},
		{Year: 2023, Count: 79390},
		{Year: 2024, Count: 72682},
	}},
}

// headlines feed the dashboard's press ticker.
var headlines = []models.Headline{
	{Text: `"I've reduced it from 9,000 heads to about 5,000 because I need less heads."`, Source: "Fortune", Company: "Marc Benioff, Salesforce CEO", Date: "Sep 2025", Type: "quote"},
	{Text: `"Before asking for more headcount, teams must demonstrate why they cannot get what they want done using AI."`, Source: "CNBC", Company: "Tobi Lutke, Shopify CEO", Date: "Apr 2025", Type: "quote"},
	{Text: `"I've decided to raise the bar on performance management and move out low performers faster."`, Source: "Internal Memo", Company: "Mark Zuckerberg, Meta CEO", Date: "Jan 2025", Type: "quote"},
	{Text: `"Those we cannot reskill will be exited."`, Source: "Reuters", Company: "Julie Sweet, Accenture CEO", Date: "Jun 2025", Type: "quote"},
	{Text: "55,000 jobs explicitly attributed to AI in 2025 -- 12x the number from just two years prior", Source: "Challenger, Gray & Christmas", Company: "", Date: "2025", Type: "stat"},
	{Text: "55% of employers report regretting AI-driven layoffs; half expected to reverse by end of 2026", Source: "Forrester / HR Executive", Company: "", Date: "2026", Type: "stat"},
	{Text: "Chegg stock crashes 99% from peak as ChatGPT destroys core business; 55%+ workforce cut", Source: "Reuters", Company: "Chegg", Date: "2025", Type: "headline"},
	{Text: "Intel reports first annual loss since 1986 ($19B); 35,000+ jobs cut in 18 months", Source: "TechCrunch", Company: "Intel", Date: "2024-2025", Type: "headline"},
	{Text: "Klarna replaces 700 agents with AI, quality collapses, CEO admits mistake and begins rehiring", Source: "Fortune", Company: "Klarna", Date: "2024-2025", Type: "headline"},
	{Text: "UPS to close 73 facilities and cut 20,000 jobs as automation reshapes logistics", Source: "Wall Street Journal", Company: "UPS", Date: "Apr 2025", Type: "headline"},
}
