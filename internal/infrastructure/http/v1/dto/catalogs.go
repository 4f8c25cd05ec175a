package dto

import (
	"time"

	"ricemill/internal/core/types"
	"ricemill/internal/domain/attendance"
	"ricemill/internal/domain/broker"
	"ricemill/internal/domain/committee"
	"ricemill/internal/domain/party"
	"ricemill/internal/domain/staff"
)

// --- Party ---

type CreatePartyRequest struct {
	Name      string `json:"name" binding:"required"`
	Type      string `json:"type" binding:"required"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	GSTNumber string `json:"gstNumber"`
}

func (r CreatePartyRequest) ToEntity() *party.Party {
	p := party.New(r.Name, party.Type(r.Type))
	p.Phone = r.Phone
	p.Address = r.Address
	p.GSTNumber = r.GSTNumber
	return p
}

type UpdatePartyRequest struct {
	Name      *string `json:"name"`
	Type      *string `json:"type"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	GSTNumber *string `json:"gstNumber"`
}

func (r UpdatePartyRequest) Apply(p *party.Party) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Type != nil {
		p.Type = party.Type(*r.Type)
	}
	if r.Phone != nil {
		p.Phone = *r.Phone
	}
	if r.Address != nil {
		p.Address = *r.Address
	}
	if r.GSTNumber != nil {
		p.GSTNumber = *r.GSTNumber
	}
	p.Touch()
}

// --- Broker ---

type CreateBrokerRequest struct {
	Name           string `json:"name" binding:"required"`
	Phone          string `json:"phone"`
	CommissionRate string `json:"commissionRate"`
}

func (r CreateBrokerRequest) ToEntity() *broker.Broker {
	b := broker.New(r.Name)
	b.Phone = r.Phone
	b.CommissionRate = types.ParseQty(r.CommissionRate)
	return b
}

type UpdateBrokerRequest struct {
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	CommissionRate *string `json:"commissionRate"`
}

func (r UpdateBrokerRequest) Apply(b *broker.Broker) {
	if r.Name != nil {
		b.Name = *r.Name
	}
	if r.Phone != nil {
		b.Phone = *r.Phone
	}
	if r.CommissionRate != nil {
		b.CommissionRate = types.ParseQty(*r.CommissionRate)
	}
	b.Touch()
}

// --- Committee center ---

type CreateCommitteeRequest struct {
	Name     string `json:"name" binding:"required"`
	District string `json:"district"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

func (r CreateCommitteeRequest) ToEntity() *committee.Center {
	cc := committee.New(r.Name)
	cc.District = r.District
	cc.Address = r.Address
	cc.Phone = r.Phone
	return cc
}

type UpdateCommitteeRequest struct {
	Name     *string `json:"name"`
	District *string `json:"district"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
}

func (r UpdateCommitteeRequest) Apply(cc *committee.Center) {
	if r.Name != nil {
		cc.Name = *r.Name
	}
	if r.District != nil {
		cc.District = *r.District
	}
	if r.Address != nil {
		cc.Address = *r.Address
	}
	if r.Phone != nil {
		cc.Phone = *r.Phone
	}
	cc.Touch()
}

// --- Staff ---

type CreateStaffRequest struct {
	Name          string `json:"name" binding:"required"`
	Designation   string `json:"designation"`
	Phone         string `json:"phone"`
	MonthlySalary string `json:"monthlySalary" binding:"required"`
	JoinedOn      string `json:"joinedOn"`
}

func (r CreateStaffRequest) ToEntity() *staff.Staff {
	s := staff.New(r.Name, types.ParseQty(r.MonthlySalary))
	s.Designation = r.Designation
	s.Phone = r.Phone
	if t, err := time.Parse("2006-01-02", r.JoinedOn); err == nil {
		s.JoinedOn = t
	}
	return s
}

type UpdateStaffRequest struct {
	Name          *string `json:"name"`
	Designation   *string `json:"designation"`
	Phone         *string `json:"phone"`
	MonthlySalary *string `json:"monthlySalary"`
}

func (r UpdateStaffRequest) Apply(s *staff.Staff) {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.Designation != nil {
		s.Designation = *r.Designation
	}
	if r.Phone != nil {
		s.Phone = *r.Phone
	}
	if r.MonthlySalary != nil {
		s.MonthlySalary = types.ParseQty(*r.MonthlySalary)
	}
	s.Touch()
}

// --- Attendance ---

type CreateAttendanceRequest struct {
	StaffID string `json:"staffId" binding:"required,uuid"`
	Date    string `json:"date" binding:"required"`
	Status  string `json:"status" binding:"required"`
	Remarks string `json:"remarks"`
}

func (r CreateAttendanceRequest) ToEntity() (*attendance.Record, error) {
	staffID, err := parseID(r.StaffID, "staffId")
	if err != nil {
		return nil, err
	}
	date, err := parseDate(r.Date, "date")
	if err != nil {
		return nil, err
	}
	rec := attendance.New(staffID, date, attendance.Status(r.Status))
	rec.Remarks = r.Remarks
	return rec, nil
}

type UpdateAttendanceRequest struct {
	Status  *string `json:"status"`
	Remarks *string `json:"remarks"`
}

func (r UpdateAttendanceRequest) Apply(rec *attendance.Record) {
	if r.Status != nil {
		rec.Status = attendance.Status(*r.Status)
	}
	if r.Remarks != nil {
		rec.Remarks = *r.Remarks
	}
	rec.Touch()
}
