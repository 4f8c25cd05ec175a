package dto

import (
	"ricemill/internal/core/types"
	"ricemill/internal/domain/deliveryorder"
	"ricemill/internal/domain/finance"
	"ricemill/internal/domain/inward"
	"ricemill/internal/domain/labor"
	"ricemill/internal/domain/milling"
	"ricemill/internal/domain/outward"
	"ricemill/internal/domain/purchase"
	"ricemill/internal/domain/sale"
)

// --- Delivery order ---

type CreateDeliveryOrderRequest struct {
	DoNumber        string `json:"doNumber" binding:"required"`
	CommitteeCenter string `json:"committeeCenter"`
	GrainMota       string `json:"grainMota"`
	GrainPatla      string `json:"grainPatla"`
	GrainSarna      string `json:"grainSarna"`
	Total           string `json:"total"`
	IssueDate       string `json:"issueDate" binding:"required"`
	Remarks         string `json:"remarks"`
}

func (r CreateDeliveryOrderRequest) ToEntity() (*deliveryorder.DeliveryOrder, error) {
	issueDate, err := parseDate(r.IssueDate, "issueDate")
	if err != nil {
		return nil, err
	}
	o := deliveryorder.New(r.DoNumber)
	o.CommitteeCenter = r.CommitteeCenter
	o.GrainMota = r.GrainMota
	o.GrainPatla = r.GrainPatla
	o.GrainSarna = r.GrainSarna
	o.Total = r.Total
	o.IssueDate = issueDate
	o.Remarks = r.Remarks
	return o, nil
}

type UpdateDeliveryOrderRequest struct {
	CommitteeCenter *string `json:"committeeCenter"`
	GrainMota       *string `json:"grainMota"`
	GrainPatla      *string `json:"grainPatla"`
	GrainSarna      *string `json:"grainSarna"`
	Total           *string `json:"total"`
	Remarks         *string `json:"remarks"`
}

func (r UpdateDeliveryOrderRequest) Apply(o *deliveryorder.DeliveryOrder) {
	if r.CommitteeCenter != nil {
		o.CommitteeCenter = *r.CommitteeCenter
	}
	if r.GrainMota != nil {
		o.GrainMota = *r.GrainMota
	}
	if r.GrainPatla != nil {
		o.GrainPatla = *r.GrainPatla
	}
	if r.GrainSarna != nil {
		o.GrainSarna = *r.GrainSarna
	}
	if r.Total != nil {
		o.Total = *r.Total
	}
	if r.Remarks != nil {
		o.Remarks = *r.Remarks
	}
	o.Touch()
}

// --- Purchase ---

type CreatePurchaseRequest struct {
	Kind     string `json:"kind" binding:"required"`
	Date     string `json:"date" binding:"required"`
	PartyID  string `json:"partyId" binding:"required,uuid"`
	BrokerID string `json:"brokerId"`
	ItemName string `json:"itemName"`
	Quantity string `json:"quantity"`
	Rate     string `json:"rate"`
	Amount   string `json:"amount"`
	Vehicle  string `json:"vehicle"`
	Remarks  string `json:"remarks"`
}

func (r CreatePurchaseRequest) ToEntity() (*purchase.Purchase, error) {
	partyID, err := parseID(r.PartyID, "partyId")
	if err != nil {
		return nil, err
	}
	brokerID, err := parseOptionalID(r.BrokerID, "brokerId")
	if err != nil {
		return nil, err
	}
	date, err := parseDate(r.Date, "date")
	if err != nil {
		return nil, err
	}

	p := purchase.New(purchase.Kind(r.Kind), partyID)
	p.Date = date
	p.BrokerID = brokerID
	p.ItemName = r.ItemName
	p.Quantity = types.ParseQty(r.Quantity)
	p.Rate = types.ParseQty(r.Rate)
	p.Amount = types.ParseQty(r.Amount)
	p.Vehicle = r.Vehicle
	p.Remarks = r.Remarks
	return p, nil
}

type UpdatePurchaseRequest struct {
	ItemName *string `json:"itemName"`
	Quantity *string `json:"quantity"`
	Rate     *string `json:"rate"`
	Amount   *string `json:"amount"`
	Vehicle  *string `json:"vehicle"`
	Remarks  *string `json:"remarks"`
}

func (r UpdatePurchaseRequest) Apply(p *purchase.Purchase) {
	if r.ItemName != nil {
		p.ItemName = *r.ItemName
	}
	if r.Quantity != nil {
		p.Quantity = types.ParseQty(*r.Quantity)
	}
	if r.Rate != nil {
		p.Rate = types.ParseQty(*r.Rate)
	}
	if r.Amount != nil {
		p.Amount = types.ParseQty(*r.Amount)
	}
	if r.Vehicle != nil {
		p.Vehicle = *r.Vehicle
	}
	if r.Remarks != nil {
		p.Remarks = *r.Remarks
	}
	p.Touch()
}

// --- Sale ---

type DoEntryRequest struct {
	DoNumber  string `json:"doNumber"`
	DhanMota  string `json:"dhanMota"`
	DhanPatla string `json:"dhanPatla"`
	DhanSarna string `json:"dhanSarna"`
}

type CreateSaleRequest struct {
	Kind      string           `json:"kind" binding:"required"`
	Date      string           `json:"date" binding:"required"`
	PartyID   string           `json:"partyId" binding:"required,uuid"`
	BrokerID  string           `json:"brokerId"`
	Quantity  string           `json:"quantity"`
	Rate      string           `json:"rate"`
	Amount    string           `json:"amount"`
	Vehicle   string           `json:"vehicle"`
	Remarks   string           `json:"remarks"`
	DoEntries []DoEntryRequest `json:"doEntries"`
}

func (r CreateSaleRequest) ToEntity() (*sale.Sale, error) {
	partyID, err := parseID(r.PartyID, "partyId")
	if err != nil {
		return nil, err
	}
	brokerID, err := parseOptionalID(r.BrokerID, "brokerId")
	if err != nil {
		return nil, err
	}
	date, err := parseDate(r.Date, "date")
	if err != nil {
		return nil, err
	}

	s := sale.New(sale.Kind(r.Kind), partyID)
	s.Date = date
	s.BrokerID = brokerID
	s.Quantity = types.ParseQty(r.Quantity)
	s.Rate = types.ParseQty(r.Rate)
	s.Amount = types.ParseQty(r.Amount)
	s.Vehicle = r.Vehicle
	s.Remarks = r.Remarks
	s.DoEntries = toDoEntries(r.DoEntries)
	return s, nil
}

type UpdateSaleRequest struct {
	Quantity  *string           `json:"quantity"`
	Rate      *string           `json:"rate"`
	Amount    *string           `json:"amount"`
	Vehicle   *string           `json:"vehicle"`
	Remarks   *string           `json:"remarks"`
	DoEntries *[]DoEntryRequest `json:"doEntries"`
}

func (r UpdateSaleRequest) Apply(s *sale.Sale) {
	if r.Quantity != nil {
		s.Quantity = types.ParseQty(*r.Quantity)
	}
	if r.Rate != nil {
		s.Rate = types.ParseQty(*r.Rate)
	}
	if r.Amount != nil {
		s.Amount = types.ParseQty(*r.Amount)
	}
	if r.Vehicle != nil {
		s.Vehicle = *r.Vehicle
	}
	if r.Remarks != nil {
		s.Remarks = *r.Remarks
	}
	if r.DoEntries != nil {
		s.DoEntries = toDoEntries(*r.DoEntries)
	}
	s.Touch()
}

func toDoEntries(reqs []DoEntryRequest) []sale.DoEntry {
	entries := make([]sale.DoEntry, len(reqs))
	for i, e := range reqs {
		entries[i] = sale.DoEntry{
			DoNumber:  e.DoNumber,
			DhanMota:  e.DhanMota,
			DhanPatla: e.DhanPatla,
			DhanSarna: e.DhanSarna,
		}
	}
	return entries
}

// --- Inward receipt ---

type CreateInwardRequest struct {
	Kind         string `json:"kind" binding:"required"`
	Date         string `json:"date" binding:"required"`
	DoNumber     string `json:"doNumber"`
	DhanMota     string `json:"dhanMota"`
	DhanPatla    string `json:"dhanPatla"`
	DhanSarna    string `json:"dhanSarna"`
	DhanMaha     string `json:"dhanMaha"`
	DhanRb       string `json:"dhanRb"`
	Vehicle      string `json:"vehicle"`
	GunnyNew     int    `json:"gunnyNew"`
	GunnyOld     int    `json:"gunnyOld"`
	GunnyPlastic int    `json:"gunnyPlastic"`
	Remarks      string `json:"remarks"`
}

func (r CreateInwardRequest) ToEntity() (*inward.Receipt, error) {
	date, err := parseDate(r.Date, "date")
	if err != nil {
		return nil, err
	}

	rec := inward.New(inward.Kind(r.Kind))
	rec.Date = date
	rec.DoNumber = r.DoNumber
	rec.DhanMota = r.DhanMota
	rec.DhanPatla = r.DhanPatla
	rec.DhanSarna = r.DhanSarna
	rec.DhanMaha = r.DhanMaha
	rec.DhanRb = r.DhanRb
	rec.Vehicle = r.Vehicle
	rec.GunnyNew = r.GunnyNew
	rec.GunnyOld = r.GunnyOld
	rec.GunnyPlastic = r.GunnyPlastic
	rec.Remarks = r.Remarks
	return rec, nil
}

type UpdateInwardRequest struct {
	DoNumber     *string `json:"doNumber"`
	DhanMota     *string `json:"dhanMota"`
	DhanPatla    *string `json:"dhanPatla"`
	DhanSarna    *string `json:"dhanSarna"`
	DhanMaha     *string `json:"dhanMaha"`
	DhanRb       *string `json:"dhanRb"`
	Vehicle      *string `json:"vehicle"`
	GunnyNew     *int    `json:"gunnyNew"`
	GunnyOld     *int    `json:"gunnyOld"`
	GunnyPlastic *int    `json:"gunnyPlastic"`
	Remarks      *string `json:"remarks"`
}

func (r UpdateInwardRequest) Apply(rec *inward.Receipt) {
	if r.DoNumber != nil {
		rec.DoNumber = *r.DoNumber
	}
	if r.DhanMota != nil {
		rec.DhanMota = *r.DhanMota
	}
	if r.DhanPatla != nil {
		rec.DhanPatla = *r.DhanPatla
	}
	if r.DhanSarna != nil {
		rec.DhanSarna = *r.DhanSarna
	}
	if r.DhanMaha != nil {
		rec.DhanMaha = *r.DhanMaha
	}
	if r.DhanRb != nil {
		rec.DhanRb = *r.DhanRb
	}
	if r.Vehicle != nil {
		rec.Vehicle = *r.Vehicle
	}
	if r.GunnyNew != nil {
		rec.GunnyNew = *r.GunnyNew
	}
	if r.GunnyOld != nil {
		rec.GunnyOld = *r.GunnyOld
	}
	if r.GunnyPlastic != nil {
		rec.GunnyPlastic = *r.GunnyPlastic
	}
	if r.Remarks != nil {
		rec.Remarks = *r.Remarks
	}
	rec.Touch()
}

// --- Outward dispatch ---

type CreateOutwardRequest struct {
	Kind         string `json:"kind" binding:"required"`
	Date         string `json:"date" binding:"required"`
	PartyID      string `json:"partyId"`
	Destination  string `json:"destination"`
	Quantity     string `json:"quantity"`
	Vehicle      string `json:"vehicle"`
	GunnyNew     int    `json:"gunnyNew"`
	GunnyOld     int    `json:"gunnyOld"`
	GunnyPlastic int    `json:"gunnyPlastic"`
	Remarks      string `json:"remarks"`
}

func (r CreateOutwardRequest) ToEntity() (*outward.Dispatch, error) {
	date, err := parseDate(r.Date, "date")
	if err != nil {
		return nil, err
	}
	partyID, err := parseOptionalID(r.PartyID, "partyId")
	if err != nil {
		return nil, err
	}

	d := outward.New(outward.Kind(r.Kind))
	d.Date = date
	d.PartyID = partyID
	d.Destination = r.Destination
	d.Quantity = types.ParseQty(r.Quantity)
	d.Vehicle = r.Vehicle
	d.GunnyNew = r.GunnyNew
	d.GunnyOld = r.GunnyOld
	d.GunnyPlastic = r.GunnyPlastic
	d.Remarks = r.Remarks
	return d, nil
}

type UpdateOutwardRequest struct {
	Destination  *string `json:"destination"`
	Quantity     *string `json:"quantity"`
	Vehicle      *string `json:"vehicle"`
	GunnyNew     *int    `json:"gunnyNew"`
	GunnyOld     *int    `json:"gunnyOld"`
	GunnyPlastic *int    `json:"gunnyPlastic"`
	Remarks      *string `json:"remarks"`
}

func (r UpdateOutwardRequest) Apply(d *outward.Dispatch) {
	if r.Destination != nil {
		d.Destination = *r.Destination
	}
	if r.Quantity != nil {
		d.Quantity = types.ParseQty(*r.Quantity)
	}
	if r.Vehicle != nil {
		d.Vehicle = *r.Vehicle
	}
	if r.GunnyNew != nil {
		d.GunnyNew = *r.GunnyNew
	}
	if r.GunnyOld != nil {
		d.GunnyOld = *r.GunnyOld
	}
	if r.GunnyPlastic != nil {
		d.GunnyPlastic = *r.GunnyPlastic
	}
	if r.Remarks != nil {
		d.Remarks = *r.Remarks
	}
	d.Touch()
}

// --- Milling run ---

type CreateMillingRequest struct {
	Kind         string `json:"kind" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Mill         string `json:"mill"`
	InputQty     string `json:"inputQty"`
	OutputRice   string `json:"outputRice"`
	OutputBran   string `json:"outputBran"`
	OutputHusk   string `json:"outputHusk"`
	OutputBroken string `json:"outputBroken"`
	Remarks      string `json:"remarks"`
}

func (r CreateMillingRequest) ToEntity() (*milling.Run, error) {
	date, err := parseDate(r.Date, "date")
	if err != nil {
		return nil, err
	}

	run := milling.New(milling.Kind(r.Kind))
	run.Date = date
	run.Mill = r.Mill
	run.InputQty = types.ParseQty(r.InputQty)
	run.OutputRice = types.ParseQty(r.OutputRice)
	run.OutputBran = types.ParseQty(r.OutputBran)
	run.OutputHusk = types.ParseQty(r.OutputHusk)
	run.OutputBroken = types.ParseQty(r.OutputBroken)
	run.Remarks = r.Remarks
	return run, nil
}

type UpdateMillingRequest struct {
	Mill         *string `json:"mill"`
	InputQty     *string `json:"inputQty"`
	OutputRice   *string `json:"outputRice"`
	OutputBran   *string `json:"outputBran"`
	OutputHusk   *string `json:"outputHusk"`
	OutputBroken *string `json:"outputBroken"`
	Remarks      *string `json:"remarks"`
}

func (r UpdateMillingRequest) Apply(run *milling.Run) {
	if r.Mill != nil {
		run.Mill = *r.Mill
	}
	if r.InputQty != nil {
		run.InputQty = types.ParseQty(*r.InputQty)
	}
	if r.OutputRice != nil {
		run.OutputRice = types.ParseQty(*r.OutputRice)
	}
	if r.OutputBran != nil {
		run.OutputBran = types.ParseQty(*r.OutputBran)
	}
	if r.OutputHusk != nil {
		run.OutputHusk = types.ParseQty(*r.OutputHusk)
	}
	if r.OutputBroken != nil {
		run.OutputBroken = types.ParseQty(*r.OutputBroken)
	}
	if r.Remarks != nil {
		run.Remarks = *r.Remarks
	}
	run.Touch()
}

// --- Labor cost ---

type CreateLaborRequest struct {
	Kind            string `json:"kind" binding:"required"`
	Date            string `json:"date" binding:"required"`
	WorkDescription string `json:"workDescription"`
	LaborGroup      string `json:"laborGroup"`
	Quantity        string `json:"quantity"`
	Rate            string `json:"rate"`
	Amount          string `json:"amount"`
	Remarks         string `json:"remarks"`
}

func (r CreateLaborRequest) ToEntity() (*labor.Cost, error) {
	date, err := parseDate(r.Date, "date")
	if err != nil {
		return nil, err
	}

	cost := labor.New(labor.Kind(r.Kind))
	cost.Date = date
	cost.WorkDescription = r.WorkDescription
	cost.LaborGroup = r.LaborGroup
	cost.Quantity = types.ParseQty(r.Quantity)
	cost.Rate = types.ParseQty(r.Rate)
	cost.Amount = types.ParseQty(r.Amount)
	cost.Remarks = r.Remarks
	return cost, nil
}

type UpdateLaborRequest struct {
	WorkDescription *string `json:"workDescription"`
	LaborGroup      *string `json:"laborGroup"`
	Quantity        *string `json:"quantity"`
	Rate            *string `json:"rate"`
	Amount          *string `json:"amount"`
	Remarks         *string `json:"remarks"`
}

func (r UpdateLaborRequest) Apply(cost *labor.Cost) {
	if r.WorkDescription != nil {
		cost.WorkDescription = *r.WorkDescription
	}
	if r.LaborGroup != nil {
		cost.LaborGroup = *r.LaborGroup
	}
	if r.Quantity != nil {
		cost.Quantity = types.ParseQty(*r.Quantity)
	}
	if r.Rate != nil {
		cost.Rate = types.ParseQty(*r.Rate)
	}
	if r.Amount != nil {
		cost.Amount = types.ParseQty(*r.Amount)
	}
	if r.Remarks != nil {
		cost.Remarks = *r.Remarks
	}
	cost.Touch()
}

// --- Transaction ---

type CreateTransactionRequest struct {
	Direction string `json:"direction" binding:"required"`
	Date      string `json:"date" binding:"required"`
	PartyID   string `json:"partyId" binding:"required,uuid"`
	Amount    string `json:"amount" binding:"required"`
	Mode      string `json:"mode"`
	Reference string `json:"reference"`
	Remarks   string `json:"remarks"`
}

func (r CreateTransactionRequest) ToEntity() (*finance.Transaction, error) {
	partyID, err := parseID(r.PartyID, "partyId")
	if err != nil {
		return nil, err
	}
	date, err := parseDate(r.Date, "date")
	if err != nil {
		return nil, err
	}

	t := finance.New(finance.Direction(r.Direction), partyID, types.ParseQty(r.Amount))
	t.Date = date
	t.Mode = finance.Mode(r.Mode)
	t.Reference = r.Reference
	t.Remarks = r.Remarks
	return t, nil
}

type UpdateTransactionRequest struct {
	Amount    *string `json:"amount"`
	Mode      *string `json:"mode"`
	Reference *string `json:"reference"`
	Remarks   *string `json:"remarks"`
}

func (r UpdateTransactionRequest) Apply(t *finance.Transaction) {
	if r.Amount != nil {
		t.Amount = types.ParseQty(*r.Amount)
	}
	if r.Mode != nil {
		t.Mode = finance.Mode(*r.Mode)
	}
	if r.Reference != nil {
		t.Reference = *r.Reference
	}
	if r.Remarks != nil {
		t.Remarks = *r.Remarks
	}
	t.Touch()
}
