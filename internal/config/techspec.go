package config

// TechSpec declares how one technology's raw export maps onto the unified
// schema: which raw columns rename to which canonical names, which columns
// are discarded, and the technology tag stamped on every row.
type TechSpec struct {
	Tech   string
	Rename map[string]string
	Drop   []string
}

// Spec4G returns the normalization spec for the 4G vendor export.
// Raw volume arrives in KB and throughput in kbps; the loader scales them
// to GB and Mbps after renaming.
func Spec4G() TechSpec {
	return TechSpec{
		Tech: "4G",
		Rename: map[string]string{
			"TIM_THROU_USER_PDCP_DL (Kbps)":       "TputDLMB",
			"TIM_THROU_USER_PDCP_UL (Kbps)":       "TputULMB",
			"TIM_DISP_COUNTER_TOTAL (%)":          "Disp",
			"TIM_VOLUME_TOTAL_DLUL_ALLOP (KB)":    "VolumeGB",
			"TIM_PRB_UTIL_MEAN_DL (%)":            "PRB_DL",
			"TIM_USERS_RRC_CONN_MAX_SUM (Units)":  "Users",
			"TIM_ACC (%)":                         "acc",
			"eNodeB":                              "Site",
		},
		Drop: []string{"Detentora", "Vendor"},
	}
}

// Spec5G returns the normalization spec for the 5G vendor export.
func Spec5G() TechSpec {
	return TechSpec{
		Tech: "5G",
		Rename: map[string]string{
			"TIM_ACC (%)":                        "acc",
			"TIM_DISP_COUNTER_TOTAL (%)":         "Disp",
			"TIM_USERS_RRC_CONN_MAX_SUM (Units)": "Users",
			"TIM_VOLUME_TOTAL_DLUL_ALLOP (KB)":   "VolumeGB",
			"TIM_THROU_USER_UL (Kbps)":           "TputULMB",
			"TIM_THROU_USER_DL (Kbps)":           "TputDLMB",
			"gNodeB":                             "Site",
		},
		Drop: []string{"Fornecedor", "gNodeB Name"},
	}
}
