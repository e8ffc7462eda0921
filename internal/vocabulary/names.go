package vocabulary

var defaultNames = []string{
	"annual_report", "budget_summary", "client_list", "project_plan", "meeting_minutes",
	"financial_statement", "hr_policies", "company_profile", "team_structure", "roadmap_2024",
	"employee_directory", "quarterly_review", "contract_template", "business_strategy", "training_materials",
	"marketing_plan", "vendor_contacts", "invoice_template", "audit_log", "sales_forecast",
	"action_items", "service_agreement", "customer_feedback", "risk_assessment", "incident_report",
	"product_catalog", "board_meeting_agenda", "expense_report", "security_guidelines", "new_hire_onboarding",
	"performance_review", "supply_chain_overview", "market_analysis", "internal_memo", "brand_guidelines",
	"data_privacy", "nda_agreement", "client_proposal", "system_architecture", "dev_roadmap",
	"asset_inventory", "operational_plan", "monthly_expenses", "growth_strategy", "it_policies",
	"office_layout", "legal_notice", "service_manual", "training_schedule", "contractor_info",
}
