package entity

import "testing"

func TestRoleCan(t *testing.T) {
	tests := []struct {
		role Role
		perm Permission
		want bool
	}{
		{RoleDoctor, PermissionPatientRead, true},
		{RoleDoctor, PermissionPatientWrite, true},
		{RoleDoctor, PermissionPatientImport, true},
		{RoleDoctor, PermissionPatientExport, true},
		{RoleAdmin, PermissionPatientRead, true},
		{RoleAdmin, PermissionPatientExport, true},
		{RoleAdmin, PermissionPatientWrite, false},
		{RoleAdmin, PermissionPatientImport, false},
		{Role("nurse"), PermissionPatientRead, false},
	}

	for _, tt := range tests {
		if got := tt.role.Can(tt.perm); got != tt.want {
			t.Errorf("%s.Can(%s) = %v, want %v", tt.role, tt.perm, got, tt.want)
		}
	}
}

func TestPrincipalCan_Nil(t *testing.T) {
	var p *Principal
	if p.Can(PermissionPatientRead) {
		t.Error("nil principal must not be granted anything")
	}
}
