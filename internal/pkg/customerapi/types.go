package customerapi

// Customer 客户积分档案
type Customer struct {
	CustomerID             string `json:"customerId"`
	FirstName              string `json:"firstName"`
	LastName               string `json:"lastName"`
	EmailAddress           string `json:"emailAddress"`
	PhoneNumber            string `json:"phoneNumber"`
	RegistrationDate       string `json:"registrationDate"`
	LoyaltyTier            string `json:"loyaltyTier"`
	TotalLifetimePoints    int    `json:"totalLifetimePoints"`
	CurrentAvailablePoints int    `json:"currentAvailablePoints"`
	AccountStatus          string `json:"accountStatus"`
}

type Pagination struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	Total  int `json:"total"`
}

// CustomerList customers 查询接口响应体
type CustomerList struct {
	Customers  []Customer `json:"customers"`
	Pagination Pagination `json:"pagination"`
}

// PointsAdjustment 积分调整请求体，正数为发放、负数为核销
type PointsAdjustment struct {
	PointsDelta int    `json:"pointsDelta"`
	Reason      string `json:"reason"`
}

// PointsBalance 积分余额响应体
type PointsBalance struct {
	CustomerID             string `json:"customerId"`
	CurrentAvailablePoints int    `json:"currentAvailablePoints"`
}
