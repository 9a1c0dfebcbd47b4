package dashboard

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Parmjot23/mortgageHelper/models"
	"github.com/Parmjot23/mortgageHelper/utils"
)

type stats struct {
	TotalLeads           int64            `json:"totalLeads"`
	LeadsByStatus        map[string]int64 `json:"leadsByStatus"`
	OpenTasks            int64            `json:"openTasks"`
	IncompleteChecklists int64            `json:"incompleteChecklists"`
}

func zeroStats() stats {
	byStatus := make(map[string]int64, len(models.ApplicationStatuses))
	for _, s := range models.ApplicationStatuses {
		byStatus[s] = 0
	}
	return stats{LeadsByStatus: byStatus}
}

// GetStats computes the dashboard counters with read-only queries. If the
// database is unreachable the dashboard still renders, so failures degrade to
// all-zero output instead of an error.
func GetStats(c *gin.Context) {
	out := zeroStats()

	if err := utils.DB.Model(&models.Lead{}).Count(&out.TotalLeads).Error; err != nil {
		log.Printf("Failed to fetch dashboard stats: %v", err)
		c.JSON(http.StatusOK, zeroStats())
		return
	}

	var grouped []struct {
		ApplicationStatus string
		Count             int64
	}
	err := utils.DB.Model(&models.Lead{}).
		Select("application_status, count(*) as count").
		Group("application_status").
		Scan(&grouped).Error
	if err != nil {
		log.Printf("Failed to fetch dashboard stats: %v", err)
		c.JSON(http.StatusOK, zeroStats())
		return
	}
	for _, row := range grouped {
		out.LeadsByStatus[row.ApplicationStatus] = row.Count
	}

	err = utils.DB.Model(&models.Task{}).Where("status = ?", models.TaskStatusOpen).Count(&out.OpenTasks).Error
	if err != nil {
		log.Printf("Failed to fetch dashboard stats: %v", err)
		c.JSON(http.StatusOK, zeroStats())
		return
	}

	err = utils.DB.Model(&models.Checklist{}).
		Where("status IN ?", []string{models.ChecklistStatusOpen, models.ChecklistStatusInProgress}).
		Count(&out.IncompleteChecklists).Error
	if err != nil {
		log.Printf("Failed to fetch dashboard stats: %v", err)
		c.JSON(http.StatusOK, zeroStats())
		return
	}

	c.JSON(http.StatusOK, out)
}
