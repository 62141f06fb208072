package domain

import "testing"

func TestUser_DisplayName(t *testing.T) {
	cases := []struct {
		user User
		want string
	}{
		{User{Username: "tsato", LastName: "Sato", FirstName: "Taro"}, "Sato Taro"},
		{User{Username: "tsato", LastName: "Sato"}, "Sato"},
		{User{Username: "tsato", FirstName: "Taro"}, "Taro"},
		{User{Username: "tsato"}, "tsato"},
	}
	for _, tc := range cases {
		if got := tc.user.DisplayName(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestViewer_SeesAll(t *testing.T) {
	if !(Viewer{IsManager: true}).SeesAll() {
		t.Fatalf("manager must see all")
	}
	if !(Viewer{IsSuperuser: true}).SeesAll() {
		t.Fatalf("superuser must see all")
	}
	if !(Viewer{IsViewer: true}).SeesAll() {
		t.Fatalf("viewer account must see all")
	}
	if (Viewer{}).SeesAll() {
		t.Fatalf("regular user must not see all")
	}
}

func TestViewer_CanCreate_ViewerReadOnly(t *testing.T) {
	if (Viewer{IsViewer: true}).CanCreate() {
		t.Fatalf("viewer accounts are read-only")
	}
	if !(Viewer{}).CanCreate() {
		t.Fatalf("regular users may create")
	}
}

func TestViewer_CanSeeProject(t *testing.T) {
	project := &Project{CreatedByID: "creator", AssignedTo: UserRef{ID: "assignee"}}

	if !(Viewer{ID: "creator"}).CanSeeProject(project) {
		t.Fatalf("creator must see own project")
	}
	if !(Viewer{ID: "assignee"}).CanSeeProject(project) {
		t.Fatalf("assignee must see the project")
	}
	if (Viewer{ID: "other"}).CanSeeProject(project) {
		t.Fatalf("unrelated regular user must not see the project")
	}
	if !(Viewer{ID: "other", IsViewer: true}).CanSeeProject(project) {
		t.Fatalf("viewer account sees every project")
	}
}

func TestViewer_CanEditProject(t *testing.T) {
	project := &Project{CreatedByID: "creator", AssignedTo: UserRef{ID: "assignee"}}

	if !(Viewer{ID: "creator"}).CanEditProject(project) {
		t.Fatalf("creator may edit")
	}
	if (Viewer{ID: "assignee"}).CanEditProject(project) {
		t.Fatalf("assignee alone may not edit")
	}
	if !(Viewer{ID: "other", IsManager: true}).CanEditProject(project) {
		t.Fatalf("manager may edit any project")
	}
	if (Viewer{ID: "creator", IsViewer: true}).CanEditProject(project) {
		t.Fatalf("viewer accounts never edit")
	}
}

func TestViewer_CanToggleProject_AssigneeIncluded(t *testing.T) {
	project := &Project{CreatedByID: "creator", AssignedTo: UserRef{ID: "assignee"}}

	if !(Viewer{ID: "assignee"}).CanToggleProject(project) {
		t.Fatalf("assignee may toggle completion")
	}
	if (Viewer{ID: "other"}).CanToggleProject(project) {
		t.Fatalf("unrelated user may not toggle")
	}
}

func TestViewer_CanEditSchedules(t *testing.T) {
	project := &Project{CreatedByID: "creator", AssignedTo: UserRef{ID: "assignee"}}

	if !(Viewer{ID: "assignee"}).CanEditSchedules(project) {
		t.Fatalf("assignee may edit schedules")
	}
	if (Viewer{ID: "assignee", IsViewer: true}).CanEditSchedules(project) {
		t.Fatalf("viewer accounts never edit schedules")
	}
}

func TestProject_ToggleCompletion(t *testing.T) {
	now := date(2024, 6, 12)
	p := &Project{}

	p.ToggleCompletion(now)
	if !p.IsCompleted || p.CompletedAt == nil {
		t.Fatalf("completing must set flag and timestamp")
	}

	p.ToggleCompletion(now)
	if p.IsCompleted || p.CompletedAt != nil {
		t.Fatalf("reopening must clear flag and timestamp")
	}
}
