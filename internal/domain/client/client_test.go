package client_test

import (
	"testing"

	"github.com/ganot/creativehub/internal/domain/client"
	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	stats := client.ComputeStats([]client.Client{
		{ID: "1", Status: client.StatusActive, TotalBudget: 100, Satisfaction: 4},
		{ID: "2", Status: client.StatusPotential, TotalBudget: 50, Satisfaction: 5},
		{ID: "3", Status: client.StatusInactive, TotalBudget: 25},
	})
	require.Equal(t, client.Stats{
		Total:           3,
		Active:          1,
		Potential:       1,
		TotalBudget:     175,
		AvgSatisfaction: 4.5,
	}, stats)
}

func TestComputeStats_NoSatisfactionIsZero(t *testing.T) {
	stats := client.ComputeStats([]client.Client{{ID: "1"}, {ID: "2"}})
	require.Zero(t, stats.AvgSatisfaction)

	require.Equal(t, client.Stats{}, client.ComputeStats(nil))
}

func TestUpdateRequestApply(t *testing.T) {
	c := client.Client{ID: "1", Name: "TechnoMax", Industry: "Tech", Satisfaction: 4.8}
	name := "TechnoMax Global"
	status := client.StatusInactive

	client.UpdateRequest{Name: &name, Status: &status}.Apply(&c)

	require.Equal(t, "TechnoMax Global", c.Name)
	require.Equal(t, client.StatusInactive, c.Status)
	require.Equal(t, "Tech", c.Industry)
	require.Equal(t, 4.8, c.Satisfaction)
}

func TestListOptionsMatches(t *testing.T) {
	c := client.Client{Name: "Gourmet Kitchen", Status: client.StatusActive, Industry: "Food"}

	require.True(t, client.ListOptions{}.Matches(c))
	require.True(t, client.ListOptions{Query: "kitch"}.Matches(c))
	require.False(t, client.ListOptions{Query: "tech"}.Matches(c))
	require.False(t, client.ListOptions{Status: client.StatusPotential}.Matches(c))
	require.False(t, client.ListOptions{Industry: "Tech"}.Matches(c))
}

func TestValidateCreateInput(t *testing.T) {
	require.ErrorIs(t, client.ValidateCreateInput(client.CreateRequest{Name: "  "}), client.ErrInvalidInput)
	require.NoError(t, client.ValidateCreateInput(client.CreateRequest{Name: "Acme"}))
}
