package models

import "time"

type Branch struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Pincode      string    `json:"pincode"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	ManagerName  string    `json:"managerName"`
	ManagerPhone string    `json:"managerPhone"`
	ManagerEmail string    `json:"managerEmail"`
	IFSCCode     string    `json:"ifscCode"`
	MICR         *string   `json:"micr"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

type BranchInput struct {
	Name         string
	Code         string
	Address      string
	City         string
	State        string
	Pincode      string
	Phone        string
	Email        string
	ManagerName  string
	ManagerPhone string
	ManagerEmail string
	IFSCCode     string
	MICR         *string
	IsActive     *bool
}

// NewBranch defaults IsActive to true and stores an empty MICR as null.
func NewBranch(id string, in BranchInput, createdAt time.Time) Branch {
	b := Branch{
		ID:           id,
		Name:         in.Name,
		Code:         in.Code,
		Address:      in.Address,
		City:         in.City,
		State:        in.State,
		Pincode:      in.Pincode,
		Phone:        in.Phone,
		Email:        in.Email,
		ManagerName:  in.ManagerName,
		ManagerPhone: in.ManagerPhone,
		ManagerEmail: in.ManagerEmail,
		IFSCCode:     in.IFSCCode,
		MICR:         nullable(in.MICR),
		IsActive:     true,
		CreatedAt:    createdAt,
	}
	if in.IsActive != nil {
		b.IsActive = *in.IsActive
	}
	return b
}

type BranchPatch struct {
	Name         *string
	Code         *string
	Address      *string
	City         *string
	State        *string
	Pincode      *string
	Phone        *string
	Email        *string
	ManagerName  *string
	ManagerPhone *string
	ManagerEmail *string
	IFSCCode     *string
	MICR         *string
	IsActive     *bool
}

func (p BranchPatch) Apply(b *Branch) {
	setString(&b.Name, p.Name)
	setString(&b.Code, p.Code)
	setString(&b.Address, p.Address)
	setString(&b.City, p.City)
	setString(&b.State, p.State)
	setString(&b.Pincode, p.Pincode)
	setString(&b.Phone, p.Phone)
	setString(&b.Email, p.Email)
	setString(&b.ManagerName, p.ManagerName)
	setString(&b.ManagerPhone, p.ManagerPhone)
	setString(&b.ManagerEmail, p.ManagerEmail)
	setString(&b.IFSCCode, p.IFSCCode)
	if p.MICR != nil {
		b.MICR = nullable(p.MICR)
	}
	if p.IsActive != nil {
		b.IsActive = *p.IsActive
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// Clone returns a copy that shares no pointers with b.
func (b Branch) Clone() Branch {
	b.MICR = cloneString(b.MICR)
	return b
}
