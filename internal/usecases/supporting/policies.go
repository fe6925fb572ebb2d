package supporting

import "github.com/vfg2006/vendorhub-api/internal/domain"

var streetVendorPolicies = []domain.Policy{
	{
		Title:   "Street Vendors (Protection of Livelihood and Regulation of Street Vending) Act, 2014",
		Summary: "Defines rights of urban street vendors, mandates Town Vending Committees (TVCs), protects from arbitrary evictions, and outlines vending certificates.",
		Source:  "https://legislative.gov.in/actsofparliamentfromtheyear/street-vendors-protection-livelihood-and-regulation-street-vending",
		Region:  "India",
	},
	{
		Title:   "Model Street Vendor Policy (MoHUA)",
		Summary: "Guidelines from Ministry of Housing and Urban Affairs to operationalize the Act, including vending zones, grievance redressal, and inclusive planning.",
		Source:  "https://mohua.gov.in/",
		Region:  "India",
	},
	{
		Title:   "PM SVANidhi Micro-Credit Scheme",
		Summary: "Collateral-free working capital loans for street vendors with interest subsidy and digital transactions incentives.",
		Source:  "https://pmsvanidhi.mohua.gov.in/",
		Region:  "India",
	},
	{
		Title:   "Urban Street Vendors Scheme (State-specific)",
		Summary: "State/ULB-level implementations for vending certificates, designated vending zones, and social security linkages aligned to the 2014 Act.",
		Source:  "https://mohua.gov.in/cms/street-vendors.aspx",
		Region:  "India",
	},
}
