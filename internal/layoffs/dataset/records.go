package dataset

import (
	"github.com/dkravets/layoffpulse/internal/layoffs/models"
	"github.com/dkravets/layoffpulse/internal/pkg/utils"
)

// baseRecords is the primary corpus, sourced from layoffs.fyi exports plus
// follow-up research. Unknown counts and percentages stay nil.
var baseRecords = []models.LayoffRecord{
	{Company: "Google", LocationHQ: "SF Bay Area", LaidOff: utils.Ptr(12000), Date: "1/17/2023", Percentage: utils.Ptr(6.0), Industry: "Consumer", Source: "https://blog.google/inside-google/message-ceo/january-update/", Stage: "Post-IPO", Country: "United States", DateAdded: "1/20/2023"},
	{Company: "Google", LocationHQ: "SF Bay Area", LaidOff: utils.Ptr(1000), Date: "1/10/2024", Industry: "Consumer", Source: "https://www.theverge.com/2024/1/10/24032817/google-layoffs-hardware-assistant", Stage: "Post-IPO", Country: "United States", DateAdded: "1/11/2024"},
	{Company: "Google", LocationHQ: "SF Bay Area", LaidOff: utils.Ptr(700), Date: "1/15/2025", Industry: "Consumer", Source: "https://www.cnbc.com/2025/01/15/google-platforms-devices-layoffs.html", Stage: "Post-IPO", Country: "United States", DateAdded: "1/16/2025"},
	{Company: "Google", LocationHQ: "SF Bay Area", LaidOff: nil, Date: "4/11/2025", Industry: "Consumer", Source: "https://www.reuters.com/technology/google-cuts-platforms-devices-2025-04-11/", Stage: "Post-IPO", Country: "United States", DateAdded: "4/12/2025"},
	{Company: "Google", LocationHQ: "SF Bay Area", LaidOff: utils.Ptr(100), Date: "2/27/2025", Industry: "Consumer", Source: "https://www.businessinsider.com/google-cloud-layoffs-2025-2", Stage: "Post-IPO", Country: "United States", DateAdded: "2/28/2025"},
	{Company: "Meta", LocationHQ: "SF Bay Area", LaidOff: utils.Ptr(11000), Date: "11/9/2022", Percentage: utils.Ptr(13.0), Industry: "Consumer", Source: "https://about.fb.com/news/2022/11/mark-zuckerberg-layoff-message-to-employees/", Stage: "Post-IPO", Country: "United States", DateAdded: "11/9/2022"},
	{Company: "Meta", LocationHQ: "SF Bay Area", LaidOff: utils.Ptr(10000), Date: "3/14/2023", Industry: "Consumer", Source: "https://www.cnbc.com/2023/03/14/meta-layoffs-10000.html", Stage: "Post-IPO", Country: "United States", DateAdded: "3/14/2023"},
	{Company: "Meta", LocationHQ: "SF Bay Area", LaidOff: utils.Ptr(3600), Date: "2/10/2025", Percentage: utils.Ptr(5.0), Industry: "Consumer", Source: "https://www.reuters.com/technology/meta-performance-cuts-2025-02-10/", Stage: "Post-IPO", Country: "United States", DateAdded: "2/11/2025"},
	{Company: "Meta", LocationHQ: "SF Bay Area", LaidOff: utils.Ptr(600), Date: "10/22/2025", Industry: "Consumer", Source: "https://www.cnbc.com/2025/10/22/meta-fair-ai-layoffs.html", Stage: "Post-IPO", Country: "United States", DateAdded: "10/23/2025"},
	{Company: "Amazon", LocationHQ: "Seattle", LaidOff: utils.Ptr(10000), Date: "11/16/2022", Industry: "Retail", Source: "https://www.nytimes.com/2022/11/14/technology/amazon-layoffs.html", Stage: "Post-IPO", Country: "United States", DateAdded: "11/16/2022"},
	{Company: "Amazon", LocationHQ: "Seattle", LaidOff: utils.Ptr(18000), Date: "1/4/2023", Industry: "Retail", Source: "https://www.aboutamazon.com/news/company-news/update-from-ceo-andy-jassy-on-role-eliminations", Stage: "Post-IPO", Country: "United States", DateAdded: "1/5/2023"},
	{Company: "Amazon", LocationHQ: "Seattle", LaidOff: utils.Ptr(9000), Date: "3/20/2023", Industry: "Retail", Source: "https://www.cnbc.com/2023/03/20/amazon-layoffs-9000.html", Stage: "Post-IPO", Country: "United States", DateAdded: "3/20/2023"},
	{Company: "Amazon", LocationHQ: "Seattle", LaidOff: utils.Ptr(14000), Date: "10/27/2025", Industry: "Retail", Source: "https://www.geekwire.com/2025/amazon-corporate-layoffs/", Stage: "Post-IPO", Country: "United States", DateAdded: "10/28/2025"},
	{Company: "Microsoft", LocationHQ: "Seattle", LaidOff: utils.Ptr(10000), Date: "1/19/2023", Percentage: utils.Ptr(4.5), Industry: "Other", Source: "https://blogs.microsoft.com/blog/2023/01/18/subject-focusing-on-our-short-and-long-term-opportunity/", Stage: "Post-IPO", Country: "United States", DateAdded: "1/19/2023"},
	{Company: "Microsoft", LocationHQ: "Seattle", LaidOff: utils.Ptr(1900), Date: "1/18/2024", Industry: "Other", Source: "https://www.theverge.com/2024/1/25/24050050/microsoft-activision-blizzard-layoffs", Stage: "Post-IPO", Country: "United States", DateAdded: "1/19/2024"},
	{Company: "Microsoft", LocationHQ: "Seattle", LaidOff: utils.Ptr(6000), Date: "5/13/2025", Industry: "Other", Source: "https://www.cnbc.com/2025/05/13/microsoft-layoffs.html", Stage: "Post-IPO", Country: "United States", DateAdded: "5/14/2025"},
	{Company: "Microsoft", LocationHQ: "Seattle", LaidOff: utils.Ptr(9000), Date: "7/2/2025", Industry: "Other", Source: "https://www.gameinformer.com/2025/07/02/microsoft-gaming-layoffs", Stage: "Post-IPO", Country: "United States", DateAdded: "7/3/2025"},
	{Company: "Salesforce", LocationHQ: "SF Bay Area", LaidOff: utils.Ptr(8000), Date: "1/4/2023", Percentage: utils.Ptr(10.0), Industry: "Sales", Source: "https://www.cnbc.com/2023/01/04/salesforce-layoffs.html", Stage: "Post-IPO", Country: "United States", DateAdded: "1/4/2023"},
	{Company: "Salesforce", LocationHQ: "SF Bay Area", LaidOff: utils.Ptr(4000), Date: "8/31/2025", Industry: "Sales", Source: "https://fortune.com/2025/09/02/salesforce-benioff-support-ai-agents/", Stage: "Post-IPO", Country: "United States", DateAdded: "9/1/2025"},
	{Company: "Intel", LocationHQ: "SF Bay Area", LaidOff: utils.Ptr(15000), Date: "8/1/2024", Percentage: utils.Ptr(15.0), Industry: "Hardware", Source: "https://www.intc.com/news-events/press-releases/detail/1644/intel-reports-second-quarter-2024-financial-results", Stage: "Post-IPO", Country: "United States", DateAdded: "8/2/2024"},
	{Company: "Intel", LocationHQ: "SF Bay Area", LaidOff: utils.Ptr(21000), Date: "4/23/2025", Industry: "Hardware", Source: "https://www.reuters.com/technology/intel-restructuring-2025-04-23/", Stage: "Post-IPO", Country: "United States", DateAdded: "4/24/2025"},
	{Company: "Intel", LocationHQ: "SF Bay Area", LaidOff: utils.Ptr(5000), Date: "7/11/2025", Industry: "Hardware", Source: "https://www.oregonlive.com/silicon-forest/2025/07/intel-foundry-layoffs.html", Stage: "Post-IPO", Country: "United States", DateAdded: "7/12/2025"},
	{Company: "Chegg", LocationHQ: "SF Bay Area", LaidOff: utils.Ptr(80), Date: "6/8/2023", Percentage: utils.Ptr(4.0), Industry: "Education", Source: "https://www.reuters.com/technology/chegg-lay-off-4-workforce-2023-06-08/", Stage: "Post-IPO", Country: "United States", DateAdded: "6/9/2023"},
	{Company: "Chegg", LocationHQ: "SF Bay Area", LaidOff: utils.Ptr(388), Date: "10/27/2025", Percentage: utils.Ptr(45.0), Industry: "Education", Source: "https://www.reuters.com/technology/chegg-cuts-2025-10-27/", Stage: "Post-IPO", Country: "United States", DateAdded: "10/28/2025"},
	{Company: "Cisco", LocationHQ: "SF Bay Area", LaidOff: utils.Ptr(4250), Date: "2/14/2024", Percentage: utils.Ptr(5.0), Industry: "Infrastructure", Source: "https://www.reuters.com/technology/cisco-layoffs-2024-02-14/", Stage: "Post-IPO", Country: "United States", DateAdded: "2/15/2024"},
	{Company: "Cisco", LocationHQ: "SF Bay Area", LaidOff: utils.Ptr(5600), Date: "8/9/2024", Percentage: utils.Ptr(7.0), Industry: "Infrastructure", Source: "https://www.cnbc.com/2024/08/14/cisco-layoffs.html", Stage: "Post-IPO", Country: "United States", DateAdded: "8/10/2024"},
	{Company: "Workday", LocationHQ: "SF Bay Area", LaidOff: utils.Ptr(1750), Date: "2/5/2025", Percentage: utils.Ptr(8.5), Industry: "HR", Source: "https://www.cnbc.com/2025/02/05/workday-layoffs.html", Stage: "Post-IPO", Country: "United States", DateAdded: "2/6/2025"},
	{Company: "Spotify", LocationHQ: "Stockholm", LaidOff: utils.Ptr(1500), Date: "12/4/2023", Percentage: utils.Ptr(17.0), Industry: "Media", Source: "https://newsroom.spotify.com/2023-12-04/an-update-on-december-2023-organizational-changes/", Stage: "Post-IPO", Country: "Sweden", DateAdded: "12/4/2023"},
	{Company: "Shopify", LocationHQ: "Ottawa", LaidOff: utils.Ptr(2000), Date: "5/4/2023", Percentage: utils.Ptr(20.0), Industry: "Retail", Source: "https://www.cnbc.com/2023/05/04/shopify-layoffs.html", Stage: "Post-IPO", Country: "Canada", DateAdded: "5/4/2023"},
	{Company: "SAP", LocationHQ: "Walldorf", LaidOff: utils.Ptr(8000), Date: "1/23/2024", Industry: "Other", Source: "https://www.reuters.com/technology/sap-restructuring-2024-01-23/", Stage: "Post-IPO", Country: "Germany", DateAdded: "1/24/2024"},
	{Company: "Dell", LocationHQ: "Austin", LaidOff: utils.Ptr(6650), Date: "2/6/2023", Percentage: utils.Ptr(5.0), Industry: "Hardware", Source: "https://www.cnbc.com/2023/02/06/dell-layoffs.html", Stage: "Post-IPO", Country: "United States", DateAdded: "2/6/2023"},
	{Company: "Dell", LocationHQ: "Austin", LaidOff: utils.Ptr(12500), Date: "8/5/2024", Industry: "Hardware", Source: "https://www.theregister.com/2024/08/05/dell_layoffs/", Stage: "Post-IPO", Country: "United States", DateAdded: "8/6/2024"},
	{Company: "PayPal", LocationHQ: "SF Bay Area", LaidOff: utils.Ptr(2500), Date: "1/30/2024", Percentage: utils.Ptr(9.0), Industry: "Finance", Source: "https://www.cnbc.com/2024/01/30/paypal-layoffs.html", Stage: "Post-IPO", Country: "United States", DateAdded: "1/31/2024"},
	{Company: "Byju's", LocationHQ: "Bengaluru", LaidOff: utils.Ptr(2500), Date: "10/12/2022", Industry: "Education", Source: "https://techcrunch.com/2022/10/12/byjus-layoffs/", Stage: "Series F", RaisedMM: utils.Ptr(5500.0), Country: "India", DateAdded: "10/13/2022"},
	{Company: "Klarna", LocationHQ: "Stockholm", LaidOff: utils.Ptr(700), Date: "5/23/2022", Percentage: utils.Ptr(10.0), Industry: "Finance", Source: "https://www.klarna.com/international/press/klarna-reduces-workforce/", Stage: "Private Equity", RaisedMM: utils.Ptr(4600.0), Country: "Sweden", DateAdded: "5/23/2022"},
	{Company: "Deepwatch", LocationHQ: "Denver", LaidOff: utils.Ptr(90), Date: "11/12/2025", Industry: "Security", Source: "https://www.securityweek.com/deepwatch-layoffs/", Stage: "Series C", RaisedMM: utils.Ptr(290.0), Country: "United States", DateAdded: "11/13/2025"},
	{Company: "Pinterest", LocationHQ: "SF Bay Area", LaidOff: nil, Date: "1/27/2026", Industry: "Consumer", Source: "https://www.cnbc.com/2026/01/27/pinterest-ai-restructuring.html", Stage: "Post-IPO", Country: "United States", DateAdded: "1/28/2026"},
	{Company: "WiseTech", LocationHQ: "Sydney", LaidOff: utils.Ptr(350), Date: "2/24/2026", Industry: "Logistics", Source: "https://www.afr.com/technology/wisetech-ai-job-cuts-20260224", Stage: "Post-IPO", Country: "Australia", DateAdded: "2/25/2026"},
	{Company: "DraftKings", LocationHQ: "Boston", LaidOff: utils.Ptr(300), Date: "2/24/2026", Industry: "Consumer", Source: "https://www.bostonglobe.com/2026/02/24/draftkings-layoffs/", Stage: "Post-IPO", Country: "United States", DateAdded: "2/25/2026"},
	{Company: "Twilio", LocationHQ: "SF Bay Area", LaidOff: utils.Ptr(1500), Date: "2/13/2023", Percentage: utils.Ptr(17.0), Industry: "Infrastructure", Source: "https://www.twilio.com/en-us/blog/a-message-from-twilios-ceo", Stage: "Post-IPO", Country: "United States", DateAdded: "2/13/2023"},
	{Company: "Bolt", LocationHQ: "SF Bay Area", LaidOff: nil, Date: "not disclosed", Industry: "Finance", Source: "https://techcrunch.com/bolt-layoffs/", Stage: "Series E", RaisedMM: utils.Ptr(1000.0), Country: "United States", DateAdded: "6/1/2022"},
}
