package seed

import (
	"time"

	"github.com/dmitrijs2005/bankportal/internal/server/models"
)

func str(s string) *string { return &s }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func schemes(now time.Time) []models.Scheme {
	return []models.Scheme{
		{
			ID:           "scheme-1",
			Name:         "Fixed Deposit Plus",
			Type:         models.SchemeTypeDeposit,
			Description:  "Secure your future with guaranteed returns on your investment.",
			InterestRate: "7.25",
			MinAmount:    str("₹10,000"),
			MaxAmount:    str("₹50,00,000"),
			Tenure:       "1-5 years",
			Status:       models.SchemeStatusActive,
			CreatedAt:    now,
		},
		{
			ID:           "scheme-2",
			Name:         "Recurring Deposit",
			Type:         models.SchemeTypeDeposit,
			Description:  "Build wealth systematically with monthly deposits and compound interest.",
			InterestRate: "6.75",
			MinAmount:    str("₹500/month"),
			MaxAmount:    str("₹1,00,000/month"),
			Tenure:       "1-10 years",
			Status:       models.SchemeStatusActive,
			CreatedAt:    now,
		},
		{
			ID:           "scheme-3",
			Name:         "Home Loan",
			Type:         models.SchemeTypeLoan,
			Description:  "Make your dream home a reality with our competitive home loan rates.",
			InterestRate: "8.50",
			MinAmount:    str("₹1,00,000"),
			MaxAmount:    str("₹2 Crore"),
			Tenure:       "Up to 30 years",
			Status:       models.SchemeStatusActive,
			CreatedAt:    now,
		},
		{
			ID:           "scheme-4",
			Name:         "Personal Loan",
			Type:         models.SchemeTypeLoan,
			Description:  "Quick approval personal loans for all your immediate financial needs.",
			InterestRate: "12.00",
			MinAmount:    str("₹25,000"),
			MaxAmount:    str("₹25 Lakh"),
			Tenure:       "1-7 years",
			Status:       models.SchemeStatusActive,
			CreatedAt:    now,
		},
	}
}

func news() []models.News {
	return []models.News{
		{
			ID:          "news-1",
			Title:       "New Digital Banking Features Launched",
			Content:     "Experience enhanced online banking with our latest digital features including instant transfers and mobile check deposits.",
			Excerpt:     "Experience enhanced online banking with our latest digital features including instant transfers and mobile check deposits.",
			PublishDate: day(2023, time.December, 15),
			Status:      models.NewsStatusPublished,
		},
		{
			ID:          "news-2",
			Title:       "Interest Rates Updated",
			Content:     "We've revised our deposit and loan interest rates to offer you better returns and competitive borrowing costs.",
			Excerpt:     "We've revised our deposit and loan interest rates to offer you better returns and competitive borrowing costs.",
			PublishDate: day(2023, time.December, 12),
			Status:      models.NewsStatusPublished,
		},
		{
			ID:          "news-3",
			Title:       "Award for Best Customer Service",
			Content:     "Unity Banking receives recognition for outstanding customer service and innovative banking solutions.",
			Excerpt:     "Unity Banking receives recognition for outstanding customer service and innovative banking solutions.",
			PublishDate: day(2023, time.December, 10),
			Status:      models.NewsStatusPublished,
		},
	}
}

func settings() []models.Setting {
	return []models.Setting{
		{ID: "setting-1", Key: "total_deposits", Value: "₹12.5 Cr", Category: "dashboard", DisplayName: "Total Deposits"},
		{ID: "setting-2", Key: "active_loans", Value: "₹8.2 Cr", Category: "dashboard", DisplayName: "Active Loans"},
		{ID: "setting-3", Key: "total_customers", Value: "2,847", Category: "dashboard", DisplayName: "Total Customers"},
		{ID: "setting-4", Key: "monthly_growth", Value: "+15.3%", Category: "dashboard", DisplayName: "Monthly Growth"},
		{ID: "setting-5", Key: "bank_name", Value: "Unity Banking", Category: "branding", DisplayName: "Bank Name"},
	}
}

func branches(now time.Time) []models.Branch {
	return []models.Branch{
		{
			ID:           "branch-1",
			Name:         "Unity Banking Main Branch",
			Code:         "UB001",
			Address:      "123 Financial District, Banking Street",
			City:         "Mumbai",
			State:        "Maharashtra",
			Pincode:      "400001",
			Phone:        "+91-22-12345678",
			Email:        "main@unitybanking.com",
			ManagerName:  "Rajesh Kumar",
			ManagerPhone: "+91-22-12345679",
			ManagerEmail: "rajesh.kumar@unitybanking.com",
			IFSCCode:     "UBNK0000001",
			MICR:         str("400000001"),
			IsActive:     true,
			CreatedAt:    now,
		},
		{
			ID:           "branch-2",
			Name:         "Unity Banking Andheri Branch",
			Code:         "UB002",
			Address:      "456 Andheri West, Commercial Complex",
			City:         "Mumbai",
			State:        "Maharashtra",
			Pincode:      "400058",
			Phone:        "+91-22-23456789",
			Email:        "andheri@unitybanking.com",
			ManagerName:  "Priya Sharma",
			ManagerPhone: "+91-22-23456790",
			ManagerEmail: "priya.sharma@unitybanking.com",
			IFSCCode:     "UBNK0000002",
			MICR:         str("400000002"),
			IsActive:     true,
			CreatedAt:    now,
		},
	}
}
