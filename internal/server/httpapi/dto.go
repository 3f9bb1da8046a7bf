package httpapi

import (
	"github.com/dmitrijs2005/bankportal/internal/server/models"
)

// Create requests require every non-defaulted field. Update requests use
// pointers; a field left out of the JSON body stays nil and keeps its stored
// value.

type schemeCreateRequest struct {
	Name         string              `json:"name" validate:"required"`
	Type         models.SchemeType   `json:"type" validate:"required,oneof=deposit loan"`
	Description  string              `json:"description" validate:"required"`
	InterestRate string              `json:"interestRate" validate:"required,decimal52"`
	MinAmount    *string             `json:"minAmount"`
	MaxAmount    *string             `json:"maxAmount"`
	Tenure       string              `json:"tenure" validate:"required"`
	Status       models.SchemeStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (r schemeCreateRequest) input() models.SchemeInput {
	rate, _ := normalizeRate(r.InterestRate)
	return models.SchemeInput{
		Name:         r.Name,
		Type:         r.Type,
		Description:  r.Description,
		InterestRate: rate,
		MinAmount:    r.MinAmount,
		MaxAmount:    r.MaxAmount,
		Tenure:       r.Tenure,
		Status:       r.Status,
	}
}

type schemeUpdateRequest struct {
	Name         *string              `json:"name" validate:"omitnil,min=1"`
	Type         *models.SchemeType   `json:"type" validate:"omitnil,oneof=deposit loan"`
	Description  *string              `json:"description"`
	InterestRate *string              `json:"interestRate" validate:"omitnil,decimal52"`
	MinAmount    *string              `json:"minAmount"`
	MaxAmount    *string              `json:"maxAmount"`
	Tenure       *string              `json:"tenure"`
	Status       *models.SchemeStatus `json:"status" validate:"omitnil,oneof=active inactive"`
}

func (r schemeUpdateRequest) patch() models.SchemePatch {
	p := models.SchemePatch{
		Name:        r.Name,
		Type:        r.Type,
		Description: r.Description,
		MinAmount:   r.MinAmount,
		MaxAmount:   r.MaxAmount,
		Tenure:      r.Tenure,
		Status:      r.Status,
	}
	if r.InterestRate != nil {
		rate, _ := normalizeRate(*r.InterestRate)
		p.InterestRate = &rate
	}
	return p
}

type newsCreateRequest struct {
	Title   string            `json:"title" validate:"required"`
	Content string            `json:"content" validate:"required"`
	Excerpt string            `json:"excerpt" validate:"required"`
	Status  models.NewsStatus `json:"status" validate:"omitempty,oneof=published draft"`
}

func (r newsCreateRequest) input() models.NewsInput {
	return models.NewsInput{Title: r.Title, Content: r.Content, Excerpt: r.Excerpt, Status: r.Status}
}

type newsUpdateRequest struct {
	Title   *string            `json:"title" validate:"omitnil,min=1"`
	Content *string            `json:"content"`
	Excerpt *string            `json:"excerpt"`
	Status  *models.NewsStatus `json:"status" validate:"omitnil,oneof=published draft"`
}

func (r newsUpdateRequest) patch() models.NewsPatch {
	return models.NewsPatch{Title: r.Title, Content: r.Content, Excerpt: r.Excerpt, Status: r.Status}
}

type documentCreateRequest struct {
	Name     string `json:"name" validate:"required"`
	FileName string `json:"fileName" validate:"required"`
	FileSize *int64 `json:"fileSize" validate:"required,gte=0"`
}

func (r documentCreateRequest) input() models.DocumentInput {
	return models.DocumentInput{Name: r.Name, FileName: r.FileName, FileSize: *r.FileSize}
}

type documentUpdateRequest struct {
	Name     *string `json:"name" validate:"omitnil,min=1"`
	FileName *string `json:"fileName" validate:"omitnil,min=1"`
	FileSize *int64  `json:"fileSize" validate:"omitnil,gte=0"`
}

func (r documentUpdateRequest) patch() models.DocumentPatch {
	return models.DocumentPatch{Name: r.Name, FileName: r.FileName, FileSize: r.FileSize}
}

type settingUpsertRequest struct {
	Key         string  `json:"key" validate:"required"`
	Value       *string `json:"value" validate:"required"`
	Category    string  `json:"category"`
	DisplayName string  `json:"displayName"`
}

func (r settingUpsertRequest) input() models.SettingInput {
	return models.SettingInput{Key: r.Key, Value: *r.Value, Category: r.Category, DisplayName: r.DisplayName}
}

// settingUpdateRequest has no key: a setting cannot be re-keyed.
type settingUpdateRequest struct {
	Value       *string `json:"value"`
	Category    *string `json:"category" validate:"omitnil,min=1"`
	DisplayName *string `json:"displayName" validate:"omitnil,min=1"`
}

func (r settingUpdateRequest) patch() models.SettingPatch {
	return models.SettingPatch{Value: r.Value, Category: r.Category, DisplayName: r.DisplayName}
}

type branchCreateRequest struct {
	Name         string  `json:"name" validate:"required"`
	Code         string  `json:"code" validate:"required"`
	Address      string  `json:"address" validate:"required"`
	City         string  `json:"city" validate:"required"`
	State        string  `json:"state" validate:"required"`
	Pincode      string  `json:"pincode" validate:"required"`
	Phone        string  `json:"phone" validate:"required"`
	Email        string  `json:"email" validate:"required,email"`
	ManagerName  string  `json:"managerName" validate:"required"`
	ManagerPhone string  `json:"managerPhone" validate:"required"`
	ManagerEmail string  `json:"managerEmail" validate:"required,email"`
	IFSCCode     string  `json:"ifscCode" validate:"required"`
	MICR         *string `json:"micr"`
	IsActive     *bool   `json:"isActive"`
}

func (r branchCreateRequest) input() models.BranchInput {
	return models.BranchInput{
		Name:         r.Name,
		Code:         r.Code,
		Address:      r.Address,
		City:         r.City,
		State:        r.State,
		Pincode:      r.Pincode,
		Phone:        r.Phone,
		Email:        r.Email,
		ManagerName:  r.ManagerName,
		ManagerPhone: r.ManagerPhone,
		ManagerEmail: r.ManagerEmail,
		IFSCCode:     r.IFSCCode,
		MICR:         r.MICR,
		IsActive:     r.IsActive,
	}
}

type branchUpdateRequest struct {
	Name         *string `json:"name" validate:"omitnil,min=1"`
	Code         *string `json:"code" validate:"omitnil,min=1"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Pincode      *string `json:"pincode"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email" validate:"omitnil,email"`
	ManagerName  *string `json:"managerName"`
	ManagerPhone *string `json:"managerPhone"`
	ManagerEmail *string `json:"managerEmail" validate:"omitnil,email"`
	IFSCCode     *string `json:"ifscCode"`
	MICR         *string `json:"micr"`
	IsActive     *bool   `json:"isActive"`
}

func (r branchUpdateRequest) patch() models.BranchPatch {
	return models.BranchPatch{
		Name:         r.Name,
		Code:         r.Code,
		Address:      r.Address,
		City:         r.City,
		State:        r.State,
		Pincode:      r.Pincode,
		Phone:        r.Phone,
		Email:        r.Email,
		ManagerName:  r.ManagerName,
		ManagerPhone: r.ManagerPhone,
		ManagerEmail: r.ManagerEmail,
		IFSCCode:     r.IFSCCode,
		MICR:         r.MICR,
		IsActive:     r.IsActive,
	}
}

// Passwords are capped at the bcrypt input limit of 72 bytes.
type userCreateRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,max=72"`
}

type userUpdateRequest struct {
	Username *string `json:"username" validate:"omitnil,min=1"`
	Password *string `json:"password" validate:"omitnil,min=1,max=72"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// sessionUser is what the admin UI receives about the signed-in account.
type sessionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
