// file: internals/features/masters/dto/group_dto.go
package dto

import (
	m "lesprivat_backend/internals/features/masters/model"
	"lesprivat_backend/internals/helpers/errs"
	"lesprivat_backend/internals/helpers/patch"
	"lesprivat_backend/internals/platform/fieldmodel"
)

type GroupInput struct {
	GroupID         patch.Patch[int64]  `json:"group_id"`
	GroupCustomerID patch.Patch[int64]  `json:"group_customer_id"`
	GroupTeacherID  patch.Patch[int64]  `json:"group_teacher_id"`
	GroupName       patch.Patch[string] `json:"group_name"`
}

func (in *GroupInput) Validate() error {
	if in.GroupCustomerID.Set && in.GroupCustomerID.Value <= 0 {
		return errs.New(errs.KindInvalidInput, "group_customer_id harus positif")
	}
	if in.GroupTeacherID.Set && in.GroupTeacherID.Value <= 0 {
		return errs.New(errs.KindInvalidInput, "group_teacher_id harus positif")
	}
	if in.GroupName.Set {
		if err := requireMaxLen("group_name", in.GroupName.Value, 200); err != nil {
			return err
		}
	}
	return nil
}

var GroupFields = fieldmodel.Model[*GroupInput]{
	PKName:   "group_id",
	PKColumn: "group_id",
	PK: func(in *GroupInput) (int64, bool) {
		return in.GroupID.Value, in.GroupID.Set
	},
	Fields: []fieldmodel.Descriptor[*GroupInput]{
		{
			Name: "group_customer_id", Column: "group_customer_id", Mandatory: true,
			Value: func(in *GroupInput) (any, bool) { return in.GroupCustomerID.Value, in.GroupCustomerID.Set },
		},
		{
			Name: "group_teacher_id", Column: "group_teacher_id", Mandatory: true,
			Value: func(in *GroupInput) (any, bool) { return in.GroupTeacherID.Value, in.GroupTeacherID.Set },
		},
		{
			Name: "group_name", Column: "group_name", Mandatory: true,
			Value: func(in *GroupInput) (any, bool) { return in.GroupName.Value, in.GroupName.Set },
		},
	},
}

type GroupResponse struct {
	GroupID         int64  `json:"group_id"`
	GroupCustomerID int64  `json:"group_customer_id"`
	GroupTeacherID  int64  `json:"group_teacher_id"`
	GroupName       string `json:"group_name"`
	GroupCreatedAt  int64  `json:"group_created_at"`
	GroupUpdatedAt  int64  `json:"group_updated_at"`
}

func FromGroup(g *m.GroupModel) *GroupResponse {
	if g == nil {
		return nil
	}
	return &GroupResponse{
		GroupID:         g.GroupID,
		GroupCustomerID: g.GroupCustomerID,
		GroupTeacherID:  g.GroupTeacherID,
		GroupName:       g.GroupName,
		GroupCreatedAt:  g.GroupCreatedAt.UnixMilli(),
		GroupUpdatedAt:  g.GroupUpdatedAt.UnixMilli(),
	}
}

func FromGroups(gs []m.GroupModel) []*GroupResponse {
	out := make([]*GroupResponse, 0, len(gs))
	for i := range gs {
		out = append(out, FromGroup(&gs[i]))
	}
	return out
}
