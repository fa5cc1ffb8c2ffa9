package services

import (
	"fmt"

	"github.com/mattwilkerson1121/Asinsights/models"
	"github.com/mattwilkerson1121/Asinsights/utils"
)

const (
	WelcomeMessage = "Hello! I'm your AI analytics assistant. Ask me anything about your e-commerce data, " +
		"such as \"What's my conversion rate?\" or \"Show me top products by revenue\"."

	NoDataReply = "I'm sorry, but I don't have access to analytics data at the moment. Please try again later."

	HelpReply = "I can help you analyze various metrics including revenue trends, conversion rates, top products, " +
		"and traffic sources. You can also ask me to generate custom reports! What specific data would you like to explore?"
)

var reportReplies = map[models.Intent]string{
	models.IntentReportRevenue: "I can generate a custom report for your revenue data. This will include revenue metrics, trends, and related KPIs in a detailed table format.",
	models.IntentReportProduct: "I can create a custom product performance report showing your top products, revenue, orders, and trends.",
	models.IntentReportTraffic: "I can generate a traffic sources report showing where your visitors are coming from.",
	models.IntentReportFunnel:  "I can create a conversion funnel report showing each stage of your customer journey.",
	models.IntentReportGeneric: "I can generate a comprehensive custom report with all your key metrics. You can select which metrics to include.",
}

// ComposeReply renders the assistant's answer for a classified query.
// snapshot is the data currently on screen; nil means no data is available.
func ComposeReply(query string, c Classification, snapshot *models.Snapshot) (string, models.ChatPrompt) {
	if snapshot == nil {
		return NoDataReply, nil
	}

	if c.Intent.IsReport() {
		criteria := models.ReportCriteria{}
		if c.Criteria != nil {
			criteria = *c.Criteria
		}
		return reportReplies[c.Intent], models.ReportPrompt{Criteria: criteria}
	}

	dashboard := models.DashboardPrompt{Query: query}
	kpis := snapshot.KPIs

	switch c.Intent {
	case models.IntentConversion:
		return fmt.Sprintf("Your current conversion rate is %s, which is %s %s%% compared to the last period. "+
			"Consider optimizing the checkout process to improve conversions.",
			kpis.ConversionRate.Value, direction(kpis.ConversionRate.Trend), utils.FormatAbs(kpis.ConversionRate.Change)), dashboard

	case models.IntentRevenue:
		return fmt.Sprintf("Total revenue for the selected period is %s, %s %s%% from the previous period. The average order value is %s.",
			kpis.Revenue.Value, direction(kpis.Revenue.Trend), utils.FormatAbs(kpis.Revenue.Change), kpis.AvgOrderValue.Value), dashboard

	case models.IntentProduct:
		if len(snapshot.TopProducts) == 0 {
			return "No product data available at the moment.", nil
		}
		top := snapshot.TopProducts[0]
		change := "increase"
		if top.Trend < 0 {
			change = "decrease"
		}
		return fmt.Sprintf("Your top product is %s with %s in revenue from %d orders, showing a %s%% %s.",
			top.Name, top.Revenue, top.Orders, utils.FormatAbs(top.Trend), change), dashboard

	case models.IntentTraffic:
		if len(snapshot.TrafficSources) == 0 {
			return "No traffic source data available at the moment.", nil
		}
		top := snapshot.TrafficSources[0]
		return fmt.Sprintf("%s drives %d%% of your traffic. Consider investing more in your top-performing channels.",
			top.Name, top.Value), dashboard

	case models.IntentOrder:
		return fmt.Sprintf("You have %s orders for the selected period, %s %s%% from the previous period.",
			kpis.Orders.Value, direction(kpis.Orders.Trend), utils.FormatAbs(kpis.Orders.Change)), dashboard
	}

	return HelpReply, nil
}

func direction(t models.Trend) string {
	if t == models.TrendUp {
		return "up"
	}
	return "down"
}
